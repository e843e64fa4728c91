package infra

import (
	"sync"
	"time"

	"petshop-bay/bay/flow/domain"

	"golang.org/x/time/rate"
)

// OwnerIntake limita admissões por tutor com um token bucket (x/time/rate)
// por nome de tutor.
//
// Um tutor cujo bucket voltou a ficar cheio é igual a um tutor novo, então
// Sweep pode esquecê-lo sem mudar nenhuma decisão futura.
type OwnerIntake struct {
	mu     sync.Mutex
	owners map[string]*rate.Limiter
	limit  rate.Limit
	burst  int
	sweep  time.Duration
}

var _ domain.IntakePolicy = (*OwnerIntake)(nil)

type IntakeOption func(*OwnerIntake)

// WithSweepEvery define o intervalo do StartSweeper. <= 0 desliga.
func WithSweepEvery(d time.Duration) IntakeOption {
	return func(o *OwnerIntake) { o.sweep = d }
}

// NewOwnerIntake permite `perSecond` admissões por segundo por tutor, com até
// `burst` admissões seguidas. burst <= 0 vira 1.
func NewOwnerIntake(perSecond float64, burst int, opts ...IntakeOption) *OwnerIntake {
	if burst <= 0 {
		burst = 1
	}
	o := &OwnerIntake{
		owners: make(map[string]*rate.Limiter),
		limit:  rate.Limit(perSecond),
		burst:  burst,
		sweep:  time.Minute,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *OwnerIntake) PerSecond() float64 { return float64(o.limit) }
func (o *OwnerIntake) Burst() int         { return o.burst }

func (o *OwnerIntake) Admit(owner string, at time.Time) (time.Duration, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	lim, ok := o.owners[owner]
	if !ok {
		lim = rate.NewLimiter(o.limit, o.burst)
		o.owners[owner] = lim
	}

	r := lim.ReserveN(at, 1)
	if !r.OK() {
		return rate.InfDuration, false
	}
	if wait := r.DelayFrom(at); wait > 0 {
		// devolve o token reservado: a admissão negada não conta.
		r.CancelAt(at)
		return wait, false
	}
	return 0, true
}

// Tracked retorna quantos tutores têm bucket em memória.
func (o *OwnerIntake) Tracked() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.owners)
}

// Sweep esquece os tutores com bucket cheio em `now`.
func (o *OwnerIntake) Sweep(now time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for owner, lim := range o.owners {
		if lim.TokensAt(now) >= float64(o.burst) {
			delete(o.owners, owner)
		}
	}
}

// StartSweeper roda Sweep periodicamente até o contexto encerrar.
func (o *OwnerIntake) StartSweeper(ctx interface{ Done() <-chan struct{} }) {
	if o.sweep <= 0 {
		return
	}

	t := time.NewTicker(o.sweep)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				o.Sweep(now)
			}
		}
	}()
}
