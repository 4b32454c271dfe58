package drum

import "testing"

func TestProperty(t *testing.T) {
	t.Run("GetSet", func(t *testing.T) {
		p := NewProperty(3)
		if p.Get() != 3 {
			t.Errorf("expected 3, got %d", p.Get())
		}
		p.Set(7)
		if p.Get() != 7 {
			t.Errorf("expected 7, got %d", p.Get())
		}
	})

	t.Run("Subscribe", func(t *testing.T) {
		p := NewProperty("a")
		var gotOld, gotNew string
		calls := 0

		p.Subscribe(func(old, new string) {
			gotOld, gotNew = old, new
			calls++
		})

		p.Set("b")
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
		if gotOld != "a" || gotNew != "b" {
			t.Errorf("expected a->b, got %s->%s", gotOld, gotNew)
		}
	})

	t.Run("NotifiesOnEqualValue", func(t *testing.T) {
		// The rolling transition policy depends on equal assignments
		// still notifying: re-setting the current digit restarts the
		// animation with identical endpoints.
		p := NewProperty(5)
		calls := 0
		p.Subscribe(func(old, new int) { calls++ })

		p.Set(5)
		if calls != 1 {
			t.Errorf("expected notification on equal assignment, got %d calls", calls)
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		p := NewProperty(0)
		calls := 0

		unsub := p.Subscribe(func(old, new int) { calls++ })
		p.Set(1)
		unsub()
		p.Set(2)

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("MultipleListeners", func(t *testing.T) {
		p := NewProperty(0)
		a, b := 0, 0
		p.Subscribe(func(_, _ int) { a++ })
		p.Subscribe(func(_, _ int) { b++ })

		p.Set(1)
		if a != 1 || b != 1 {
			t.Errorf("expected both listeners called once, got %d and %d", a, b)
		}
	})
}
