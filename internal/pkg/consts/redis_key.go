package consts

const (
	UserIsPosterKey = "user:is_poster:"
	PostQPDirtyKey  = "post:qp:dirty"
	HotHashtagKey   = "hashtag:hot"
)

const (
	HotHashtagLock = "lock:hashtag:hot"
)
