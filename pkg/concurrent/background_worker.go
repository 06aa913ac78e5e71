package concurrent

import "sync"

type JobI interface{}

type JobFunc[T JobI, G any] func(job T) G

// BackgroundWorker runs jobFunc on a fixed number of goroutines. results come out
// unordered on CollectResults, which must be drained while jobs are submitted.
type BackgroundWorker[T JobI, G any] struct {
	workers   int
	msgC      chan T
	resC      chan G
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T, G]
	closeOnce sync.Once
}

func NewBackgroundWorker[T JobI, G any](workers, buffer int, jobFunc JobFunc[T, G]) *BackgroundWorker[T, G] {
	if workers < 1 {
		workers = 1
	}
	return &BackgroundWorker[T, G]{
		workers: workers,
		msgC:    make(chan T, buffer),
		resC:    make(chan G, buffer),
		jobFunc: jobFunc,
	}
}

func (bw *BackgroundWorker[T, G]) TriggerProcessing(jobData T) {
	bw.msgC <- jobData
}

func (bw *BackgroundWorker[T, G]) Start() {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for jobData := range bw.msgC {
				bw.resC <- bw.jobFunc(jobData)
			}
		}()
	}
}

func (bw *BackgroundWorker[T, G]) CollectResults() <-chan G {
	return bw.resC
}

// Close stops accepting jobs, waits for the running ones and closes the results channel.
func (bw *BackgroundWorker[T, G]) Close() {
	bw.closeOnce.Do(func() {
		close(bw.msgC)
		bw.waitGroup.Wait()
		close(bw.resC)
	})
}
