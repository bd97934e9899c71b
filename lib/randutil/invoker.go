package randutil

// Invoker is a weighted random-action dispatcher: it registers
// (weight, action) pairs and samples an action index with probability
// proportional to its weight. It drives long randomized scenarios, e.g.
// a 90/10 insert/erase mix against a container under test.
type Invoker struct {
	rng     *QuickRNG
	weights []float64
	actions []func()
}

func NewInvoker(seed uint64) *Invoker {
	return &Invoker{rng: NewQuickRNG(seed)}
}

func (inv *Invoker) Add(weight float64, action func()) {
	inv.weights = append(inv.weights, weight)
	inv.actions = append(inv.actions, action)
}

// Next samples one registered action by weight, runs it and reports its
// index. Without any positively weighted action it reports -1.
func (inv *Invoker) Next() int {
	total := 0.0
	for _, w := range inv.weights {
		total += w
	}
	if total <= 0 {
		return -1
	}

	r := float64(inv.rng.Next()) / (1 << 32) * total
	cum := 0.0
	idx := -1
	for i, w := range inv.weights {
		cum += w
		if w > 0 && r < cum {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Floating point edge at the very top of the range.
		for i := len(inv.weights) - 1; i >= 0; i-- {
			if inv.weights[i] > 0 {
				idx = i
				break
			}
		}
	}
	inv.actions[idx]()
	return idx
}

// Run performs n weighted dispatches.
func (inv *Invoker) Run(n int) {
	for k := 0; k < n; k++ {
		inv.Next()
	}
}
