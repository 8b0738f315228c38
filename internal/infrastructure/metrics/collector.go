// Package metrics expõe contadores de estoque no formato Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
)

var _ inventory.StockNotifier = (*Collector)(nil)

// Collector registra os eventos de estoque confirmados.
type Collector struct {
	registry      *prometheus.Registry
	events        *prometheus.CounterVec
	units         *prometheus.CounterVec
	modelQuantity *prometheus.GaugeVec
	requests      *prometheus.CounterVec
}

// NewCollector cria um registry próprio com os coletores de processo e Go.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "epi",
			Name:      "stock_events_total",
			Help:      "Eventos de estoque confirmados, por tipo de evento e de movimentação.",
		}, []string{"evento", "tipo"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "epi",
			Name:      "stock_units_total",
			Help:      "Unidades movimentadas, por direção (entrada/saida).",
		}, []string{"direcao"}),
		modelQuantity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "epi",
			Name:      "model_quantity",
			Help:      "Último saldo agregado conhecido por modelo de EPI.",
		}, []string{"id_modelo_epi"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "epi",
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por método e status.",
		}, []string{"method", "status"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.events, c.units, c.modelQuantity, c.requests,
	)
	return c
}

// StockChanged atualiza contadores e o gauge do modelo.
func (c *Collector) StockChanged(evt inventory.StockEvent) {
	c.events.WithLabelValues(evt.Kind, string(evt.MovementType)).Inc()
	switch {
	case evt.Delta > 0:
		c.units.WithLabelValues("entrada").Add(float64(evt.Delta))
	case evt.Delta < 0:
		c.units.WithLabelValues("saida").Add(float64(-evt.Delta))
	}
	if evt.ModelID != 0 {
		c.modelQuantity.WithLabelValues(strconv.FormatInt(evt.ModelID, 10)).Set(float64(evt.ModelQuantity))
	}
}

// ObserveRequest conta uma requisição HTTP atendida.
func (c *Collector) ObserveRequest(method string, status int) {
	c.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler serve /metrics a partir do registry próprio.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
