package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

func runConcurrency() {
	runSimpleGoroutine()
	runSchedulingComparison()
	runAtomicCounter()
	runCoordinatedTransfer()
	runStateOwningWorker()
	runPipeline()
}

func runSimpleGoroutine() {
	fmt.Println("=== Simple Goroutine Demo ===")

	done := make(chan struct{})
	go func() {
		defer close(done)
		fmt.Println("Running in a goroutine")
		time.Sleep(100 * time.Millisecond)
		fmt.Println("Goroutine completed task")
	}()

	<-done
	fmt.Println("Main goroutine: worker has completed")
}

// runSchedulingComparison runs the same IO-bound workload once through a
// fixed worker pool and once with a goroutine per task.
func runSchedulingComparison() {
	fmt.Println("\n--- Worker Pool vs Goroutine-per-Task Comparison ---")

	const taskCount = 10_000
	const poolSize = 100
	work := func() { time.Sleep(10 * time.Millisecond) }

	poolStart := time.Now()
	tasks := make(chan struct{})
	var poolWg sync.WaitGroup
	for i := 0; i < poolSize; i++ {
		poolWg.Add(1)
		go func() {
			defer poolWg.Done()
			for range tasks {
				work()
			}
		}()
	}
	for i := 0; i < taskCount; i++ {
		tasks <- struct{}{}
	}
	close(tasks)
	poolWg.Wait()
	poolDuration := time.Since(poolStart)

	perTaskStart := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < taskCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work()
		}()
	}
	wg.Wait()
	perTaskDuration := time.Since(perTaskStart)

	fmt.Printf("Fixed pool (%d workers) execution time: %v\n", poolSize, poolDuration)
	fmt.Printf("Goroutine-per-task execution time: %v\n", perTaskDuration)
}

// runAtomicCounter shows lock-free shared state with sync/atomic.
func runAtomicCounter() {
	fmt.Println("\n--- Atomic Counter Demo ---")

	var counter atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Add(1)
		}()
	}
	wg.Wait()

	fmt.Printf("1000 goroutines incremented the counter to %d\n", counter.Load())
}

// runCoordinatedTransfer moves money between two accounts under a single
// mutex so the combined balance is preserved no matter the interleaving.
func runCoordinatedTransfer() {
	fmt.Println("\n--- Coordinated Transfer Demo ---")

	var mu sync.Mutex
	checking, savings := 1000, 1000

	transfer := func(amount int) {
		mu.Lock()
		defer mu.Unlock()
		if checking >= amount {
			checking -= amount
			savings += amount
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			transfer(10)
		}()
	}
	wg.Wait()

	fmt.Printf("Checking: %d, Savings: %d, Combined: %d\n", checking, savings, checking+savings)
}

// runStateOwningWorker serializes all mutations of a value through a single
// goroutine that owns it; callers only ever talk to the channel.
func runStateOwningWorker() {
	fmt.Println("\n--- State-Owning Worker Demo ---")

	type command struct {
		delta int
		read  chan int
	}

	commands := make(chan command)
	go func() {
		state := 0
		for cmd := range commands {
			state += cmd.delta
			if cmd.read != nil {
				cmd.read <- state
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			commands <- command{delta: 2}
		}()
	}
	wg.Wait()

	read := make(chan int)
	commands <- command{read: read}
	fmt.Printf("Worker-owned state after 50 updates: %d\n", <-read)
	close(commands)
}

// runPipeline chains stages over channels: generate, square, sum.
func runPipeline() {
	fmt.Println("\n--- Channel Pipeline Demo ---")

	generate := func(n int) <-chan int {
		out := make(chan int)
		go func() {
			defer close(out)
			for i := 1; i <= n; i++ {
				out <- i
			}
		}()
		return out
	}

	square := func(in <-chan int) <-chan int {
		out := make(chan int)
		go func() {
			defer close(out)
			for v := range in {
				out <- v * v
			}
		}()
		return out
	}

	sum := 0
	for v := range square(generate(10)) {
		sum += v
	}
	fmt.Printf("Sum of squares 1..10: %d\n", sum)
}
