package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every prometheus collector FastStack exposes. Bounded
// cardinality throughout: no per-session or per-player labels, mirroring
// the teacher's observability.go comment about avoiding label-based DoS.
type Metrics struct {
	tickDuration    prometheus.Histogram
	linesCleared    prometheus.Counter
	blocksPlaced    prometheus.Counter
	gamesOver       prometheus.Counter
	finesseWaste    prometheus.Counter
	currentState    *prometheus.GaugeVec
	wsConnections   prometheus.Gauge
	wsMessagesTotal prometheus.Counter
	iniWarnings     prometheus.Counter
}

// NewMetrics registers a fresh collector set against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "faststack_tick_duration_seconds",
			Help:    "Wall-clock time spent in one Engine.Tick call",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}),
		linesCleared: factory.NewCounter(prometheus.CounterOpts{
			Name: "faststack_lines_cleared_total",
			Help: "Total lines cleared across the engine's lifetime",
		}),
		blocksPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "faststack_blocks_placed_total",
			Help: "Total pieces locked",
		}),
		gamesOver: factory.NewCounter(prometheus.CounterOpts{
			Name: "faststack_games_over_total",
			Help: "Total times the engine transitioned into GAMEOVER",
		}),
		finesseWaste: factory.NewCounter(prometheus.CounterOpts{
			Name: "faststack_finesse_waste_total",
			Help: "Cumulative finesse waste across all locked pieces",
		}),
		currentState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "faststack_state",
			Help: "1 for the engine's current tick-state value, 0 otherwise",
		}, []string{"state"}),
		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "faststack_spectator_connections",
			Help: "Currently connected spectator websocket clients",
		}),
		wsMessagesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "faststack_spectator_messages_total",
			Help: "Total snapshot broadcasts sent to spectators",
		}),
		iniWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "faststack_ini_warnings_total",
			Help: "Total warnings raised while parsing the INI config file",
		}),
	}
}

// RecordTick observes the duration of one Tick call.
func (m *Metrics) RecordTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

// RecordLock records one locked piece, the lines it cleared, its finesse
// waste, and a GAMEOVER transition if gameOver is true.
func (m *Metrics) RecordLock(linesCleared int, finesseWaste int, gameOver bool) {
	m.blocksPlaced.Inc()
	m.linesCleared.Add(float64(linesCleared))
	m.finesseWaste.Add(float64(finesseWaste))
	if gameOver {
		m.gamesOver.Inc()
	}
}

// SetState flips the current-state gauge vector so exactly one label is 1.
func (m *Metrics) SetState(all []string, current string) {
	for _, s := range all {
		v := 0.0
		if s == current {
			v = 1.0
		}
		m.currentState.WithLabelValues(s).Set(v)
	}
}

// UpdateSpectatorConnections sets the active-connection gauge.
func (m *Metrics) UpdateSpectatorConnections(count int) {
	m.wsConnections.Set(float64(count))
}

// IncrementSpectatorMessages counts one outbound snapshot broadcast.
func (m *Metrics) IncrementSpectatorMessages() {
	m.wsMessagesTotal.Inc()
}

// RecordINIWarning counts one rejected INI line or assignment.
func (m *Metrics) RecordINIWarning() {
	m.iniWarnings.Inc()
}
