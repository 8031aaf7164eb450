// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/task"
)

func TestSpawnSynchronous(t *testing.T) {
	// A body with no suspension finishes inside Spawn, fast path.
	tk := task.Spawn(kont.Pure(2 + 2))

	if !tk.Ready() {
		t.Fatal("synchronous task not ready immediately after spawn")
	}
	if !tk.Finished() {
		t.Fatal("synchronous task not finished immediately after spawn")
	}
	n, err := tk.Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if n != 4 {
		t.Fatalf("result got %d, want 4", n)
	}
}

func TestSpawnBindChain(t *testing.T) {
	// Pure binds never suspend; the whole chain runs inside Spawn.
	tk := task.Spawn(kont.Bind(kont.Pure(10), func(n int) kont.Eff[int] {
		return kont.Bind(kont.Pure(n*2), func(m int) kont.Eff[int] {
			return kont.Pure(m + 1)
		})
	}))

	if !tk.Ready() {
		t.Fatal("bind chain not ready after spawn")
	}
	n, err := tk.Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if n != 21 {
		t.Fatalf("result got %d, want 21", n)
	}
}

func TestAwaitReadySource(t *testing.T) {
	// Awaiting an already-completed source is not a real suspension:
	// the task stays on the synchronous path.
	src := task.NewSource[int]()
	src.Complete(7)

	tk := task.Spawn(task.AwaitBind(src, func(n int) kont.Eff[int] {
		return kont.Pure(n * 3)
	}))

	if !tk.Ready() {
		t.Fatal("task awaiting ready source not ready after spawn")
	}
	n, err := tk.Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if n != 21 {
		t.Fatalf("result got %d, want 21", n)
	}
}

func TestNestedSynchronousTasks(t *testing.T) {
	// A task awaiting an already-finished task proceeds inline.
	inner := task.Spawn(kont.Pure(5))

	outer := task.Spawn(task.AwaitBind(inner, func(n int) kont.Eff[int] {
		return kont.Pure(n + 1)
	}))

	if !outer.Ready() {
		t.Fatal("outer task not ready after spawn")
	}
	n, err := outer.Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if n != 6 {
		t.Fatalf("result got %d, want 6", n)
	}
}

func TestNestedSuspendedChain(t *testing.T) {
	// outer awaits inner, inner awaits a source completed on another
	// goroutine: completion resolves the chain one hop at a time.
	src := task.NewSource[string]()

	inner := task.Spawn(task.AwaitBind(src, func(s string) kont.Eff[string] {
		return kont.Pure(s + ".inner")
	}))
	outer := task.Spawn(task.AwaitBind(inner, func(s string) kont.Eff[string] {
		return kont.Pure(s + ".outer")
	}))

	if outer.Finished() {
		t.Fatal("outer finished before source completion")
	}
	if inner.Finished() {
		t.Fatal("inner finished before source completion")
	}

	go src.Complete("done")

	s, err := task.Wait(outer)
	if err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if s != "done.inner.outer" {
		t.Fatalf("result got %q, want %q", s, "done.inner.outer")
	}
}

func TestAwaitThenDiscards(t *testing.T) {
	src := task.NewSource[int]()
	src.Complete(99)

	tk := task.Spawn(task.AwaitThen(src, kont.Pure("after")))

	s, err := tk.Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if s != "after" {
		t.Fatalf("result got %q, want %q", s, "after")
	}
}

func TestSequentialAwaits(t *testing.T) {
	// Two suspensions back to back on the same task.
	first := task.NewSource[int]()
	second := task.NewSource[int]()

	tk := task.Spawn(task.AwaitBind(first, func(a int) kont.Eff[int] {
		return task.AwaitBind(second, func(b int) kont.Eff[int] {
			return kont.Pure(a + b)
		})
	}))

	go func() {
		first.Complete(40)
		second.Complete(2)
	}()

	n, err := task.Wait(tk)
	if err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if n != 42 {
		t.Fatalf("result got %d, want 42", n)
	}
}

func TestSerialMonotonic(t *testing.T) {
	t1 := task.Spawn(kont.Pure(1))
	t2 := task.Spawn(kont.Pure(2))
	t3 := task.Spawn(kont.Pure(3))

	if t1.Serial() >= t2.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", t1.Serial(), t2.Serial())
	}
	if t2.Serial() >= t3.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", t2.Serial(), t3.Serial())
	}
}
