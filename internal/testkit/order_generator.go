package testkit

import (
	"fmt"
	"math/rand"
	"strconv"
)

// OrderTableConfig configures the synthetic order table generator
type OrderTableConfig struct {
	Rows          int     `json:"rows"`
	CustomerCount int     `json:"customer_count"`
	NullRate      float64 `json:"null_rate"`     // share of blank amount and discount cells
	DiscountRate  float64 `json:"discount_rate"` // share of orders carrying a discount
	Seed          int64   `json:"seed"`
}

// DefaultOrderTableConfig returns sensible defaults for generated orders
func DefaultOrderTableConfig() OrderTableConfig {
	return OrderTableConfig{
		Rows:          500,
		CustomerCount: 40,
		NullRate:      0.05,
		DiscountRate:  0.2,
		Seed:          42,
	}
}

// OrderTableHeader lists the generated columns
var OrderTableHeader = []string{"order_id", "customer", "amount", "quantity", "status", "discount"}

var orderStatuses = []string{"placed", "shipped", "delivered", "returned", "refunded"}

// OrderTableGenerator produces deterministic e-commerce order rows
type OrderTableGenerator struct {
	config OrderTableConfig
	rng    *rand.Rand
}

// NewOrderTableGenerator creates a generator seeded from the config
func NewOrderTableGenerator(config OrderTableConfig) *OrderTableGenerator {
	if config.CustomerCount <= 0 {
		config.CustomerCount = 1
	}
	return &OrderTableGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns config.Rows order rows matching OrderTableHeader
func (g *OrderTableGenerator) Generate() [][]string {
	rows := make([][]string, 0, g.config.Rows)
	for i := 0; i < g.config.Rows; i++ {
		rows = append(rows, g.order(i+1))
	}
	return rows
}

func (g *OrderTableGenerator) order(id int) []string {
	customer := fmt.Sprintf("customer_%04d", g.rng.Intn(g.config.CustomerCount)+1)

	amount := ""
	if g.rng.Float64() >= g.config.NullRate {
		// exponential basket value
		value := 5 + g.rng.ExpFloat64()*45
		amount = strconv.FormatFloat(float64(int(value*100))/100, 'f', -1, 64)
	}

	quantity := strconv.Itoa(1 + g.rng.Intn(6))
	status := orderStatuses[g.rng.Intn(len(orderStatuses))]

	discount := ""
	if g.rng.Float64() < g.config.DiscountRate && g.rng.Float64() >= g.config.NullRate {
		discount = strconv.Itoa(5 * (1 + g.rng.Intn(6)))
	}

	return []string{strconv.Itoa(id), customer, amount, quantity, status, discount}
}

// Shuffle returns a copy of rows in a seeded random order
func Shuffle(rows [][]string, seed int64) [][]string {
	out := make([][]string, len(rows))
	copy(out, rows)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
