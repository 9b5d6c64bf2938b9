package system

import (
	"log"

	"github.com/milk9111/teddyburger/collision"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/obj"
	"github.com/milk9111/teddyburger/scores"
)

// resolveBearCollisions bounces every intersecting pair of active bears.
func (w *World) resolveBearCollisions(elapsedMs float64) {
	for i := 0; i < len(w.Bears); i++ {
		a := w.Bears[i]
		for j := i + 1; j < len(w.Bears); j++ {
			if !a.Active {
				break
			}
			b := w.Bears[j]
			if !b.Active {
				continue
			}
			out, hit := collision.CheckPairCollision(elapsedMs, w.bounds.Width, w.bounds.Height,
				a.Velocity(), a.Rect(), b.Velocity(), b.Rect())
			if !hit {
				continue
			}
			w.applySide(a, out.First)
			w.applySide(b, out.Second)
			w.Sounds.Emit(component.SoundTeddyBounce)
			x, y := a.Center()
			w.Combat.Emit(component.CombatEvent{Type: component.EventBounce, Frame: w.frame, PosX: x, PosY: y})
		}
	}
}

func (w *World) applySide(b *obj.TeddyBear, side collision.Side) {
	if side.OutOfBounds {
		b.Active = false
		x, y := b.Center()
		w.Combat.Emit(component.CombatEvent{Type: component.EventOutOfBounds, Frame: w.frame, PosX: x, PosY: y})
		return
	}
	b.SetVelocity(side.Velocity)
	b.SetRect(side.Rect)
}

// resolveBurgerBearCollisions trades a bear for burger health.
func (w *World) resolveBurgerBearCollisions() {
	burgerRect := w.Burger.Rect()
	for _, b := range w.Bears {
		if !b.Active || !b.Rect().Intersects(burgerRect) {
			continue
		}
		b.Active = false
		x, y := b.Center()
		w.damageBurger(w.spec.TeddyBear.Damage, x, y)
		w.addExplosion(x, y)
	}
}

// resolveBurgerProjectileCollisions applies enemy shots to the burger.
func (w *World) resolveBurgerProjectileCollisions() {
	burgerRect := w.Burger.Rect()
	for _, p := range w.Projectiles {
		if !p.Active || p.Type != component.FromEnemy || !p.Rect().Intersects(burgerRect) {
			continue
		}
		p.Active = false
		x, y := p.Center()
		w.damageBurger(p.Damage, x, y)
	}
}

// resolveBearProjectileCollisions lets french fries destroy bears. A bear
// dies at most once per frame no matter how many fries hit it.
func (w *World) resolveBearProjectileCollisions() {
	for _, b := range w.Bears {
		for _, p := range w.Projectiles {
			if !b.Active {
				break
			}
			if !p.Active || p.Type != component.FromPlayer || !p.Rect().Intersects(b.Rect()) {
				continue
			}
			b.Active = false
			p.Active = false
			x, y := b.Center()
			w.score += w.spec.TeddyBear.Points
			w.Combat.Emit(component.CombatEvent{Type: component.EventKill, Score: w.spec.TeddyBear.Points, Frame: w.frame, PosX: x, PosY: y})
			w.addExplosion(x, y)
		}
	}
}

func (w *World) damageBurger(amount int, x, y float64) {
	applied := w.Burger.Health().ApplyDamage(amount)
	w.Sounds.Emit(component.SoundBurgerDamage)
	w.Combat.Emit(component.CombatEvent{Type: component.EventDamageApplied, Damage: applied, Frame: w.frame, PosX: x, PosY: y})
	w.CheckBurgerKill()
}

func (w *World) addExplosion(x, y float64) {
	w.Explosions = append(w.Explosions, obj.NewExplosion(w.spec.Explosion, x, y))
	w.Sounds.Emit(component.SoundExplosion)
}

// CheckBurgerKill records the burger's death the first time its health is
// exhausted: plays the death sound and saves the score. Later calls do
// nothing.
func (w *World) CheckBurgerKill() {
	if w.Burger == nil || !w.Burger.Health().MarkDead() {
		return
	}
	w.Sounds.Emit(component.SoundBurgerDeath)
	w.Combat.Emit(component.CombatEvent{Type: component.EventDeath, Score: w.score, Frame: w.frame, PosX: w.Burger.X, PosY: w.Burger.Y})
	w.saveScore()
}

func (w *World) saveScore() {
	if w.store == nil {
		return
	}
	entry := scores.Score{PlayerName: w.spec.PlayerName, Value: w.score}
	if err := w.store.Save(entry); err != nil {
		log.Printf("system: save score for %q: %v", entry.PlayerName, err)
		return
	}
	w.reloadHighScores()
}
