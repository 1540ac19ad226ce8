package pathfind

// entry is a frontier item: a state id and the cost at which it was pushed.
type entry struct {
	cost int64
	id   int32
}

// frontier implements heap.Interface as a min-heap on cost.
type frontier []entry

func (f frontier) Len() int { return len(f) }

// Ties break on id so equal-cost pops are deterministic.
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(entry))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
