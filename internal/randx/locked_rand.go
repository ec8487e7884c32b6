package randx

import (
	"math/rand/v2"
	"sync"
)

// LockedRand: math/rand/v2.Rand 를 goroutine-safe 하게 감싼 래퍼입니다.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New 는 r 을 감싼다. nil 이면 시간 기반 시드를 쓴다.
func New(r *rand.Rand) *LockedRand {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LockedRand{r: r}
}

// NewSeeded 는 고정 시드 생성기를 만든다. 테스트용이다.
func NewSeeded(seed1, seed2 uint64) *LockedRand {
	return New(rand.New(rand.NewPCG(seed1, seed2)))
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Pick 은 items 중 하나를 균등 확률로 고른다. 비어 있으면 false 를 반환한다.
func Pick[T any](l *LockedRand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[l.IntN(len(items))], true
}
