package service

// QPPolicy decides whether a view recomputes QP inline or defers it to the refresh job
type QPPolicy interface {
	RecomputeInline(views int64) bool
}

// EveryNViews recomputes inline on every Nth view; N <= 0 always defers
type EveryNViews int64

func (n EveryNViews) RecomputeInline(views int64) bool {
	return n > 0 && views > 0 && views%int64(n) == 0
}
