package summarizer

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrQuotaExceeded is returned once the daily summary budget is spent.
var ErrQuotaExceeded = errors.New("summarizer: daily quota exceeded")

// QuotaLimiter 는 요약용 LLM 호출에 대한 분당/일일 한도를 관리한다.
// 인메모리로 동작하므로 재시작하면 카운터가 초기화된다.
type QuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewQuotaLimiter 는 0 이하인 한도는 제한하지 않는다.
func NewQuotaLimiter(requestsPerMinute, requestsPerDay int) *QuotaLimiter {
	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	return &QuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WaitAndReserve 는 분당 간격을 기다린 뒤 호출 1회를 예약한다.
// 일일 한도를 넘으면 (false, nil), 컨텍스트가 끝나면 (false, ctx.Err()) 를 반환한다.
func (l *QuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()
		now := l.now()
		if key := now.Format("2006-01-02"); l.dayKey != key {
			l.dayKey = key
			l.usedToday = 0
		}
		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}
		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}
		l.mu.Unlock()

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		}
	}
}

// Limited wraps a Summarizer with a QuotaLimiter.
type Limited struct {
	Summarizer
	Quota *QuotaLimiter
}

func NewLimited(s Summarizer, q *QuotaLimiter) *Limited {
	return &Limited{Summarizer: s, Quota: q}
}

func (l *Limited) Summarize(ctx context.Context, text string) (string, error) {
	ok, err := l.Quota.WaitAndReserve(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrQuotaExceeded
	}
	return l.Summarizer.Summarize(ctx, text)
}
