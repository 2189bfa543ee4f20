package chip8

import "testing"

func TestStackPushPop(t *testing.T) {
	var s callStack
	if got := s.len(); got != 0 {
		t.Fatalf("fresh stack len = %d, want 0", got)
	}

	if o := s.push(0x202); !o.Ok() {
		t.Fatalf("push failed: %v", o)
	}
	if got := s.len(); got != 1 {
		t.Fatalf("len after one push = %d, want 1", got)
	}

	addr, o := s.pop()
	if !o.Ok() {
		t.Fatalf("pop failed: %v", o)
	}
	if addr != 0x202 {
		t.Errorf("pop = 0x%X, want 0x202", addr)
	}
	if got := s.len(); got != 0 {
		t.Errorf("len after pop = %d, want 0", got)
	}
}

func TestStackEmpty(t *testing.T) {
	var s callStack
	if _, o := s.pop(); o != StackEmpty {
		t.Errorf("pop on empty stack = %v, want StackEmpty", o)
	}
}

func TestStackOverflow(t *testing.T) {
	var s callStack
	for i := 0; i < stackDepth; i++ {
		if o := s.push(uint16(i)); !o.Ok() {
			t.Fatalf("push %d failed: %v", i, o)
		}
	}
	if o := s.push(0xFFFF); o != StackOverflow {
		t.Errorf("push on full stack = %v, want StackOverflow", o)
	}
}

func TestStackLIFOOrder(t *testing.T) {
	var s callStack
	s.push(1)
	s.push(2)
	s.push(3)

	for _, want := range []uint16{3, 2, 1} {
		got, o := s.pop()
		if !o.Ok() {
			t.Fatalf("pop failed: %v", o)
		}
		if got != want {
			t.Errorf("pop = %d, want %d", got, want)
		}
	}
}
