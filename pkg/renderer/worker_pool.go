package renderer

import (
	"errors"
	"runtime"
	"sync"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/integrator"
	"github.com/lumen-render/lumen/pkg/scene"
)

// errPoolClosed reports a result queue that closed mid-pass.
var errPoolClosed = errors.New("worker pool closed before the pass finished")

// TileTask is one tile's worth of sampling for a single pass.
type TileTask struct {
	Tile    *Tile
	Pass    int
	Samples int // samples per pixel to add in this pass
}

// TileResult reports a finished tile back to the pass loop.
type TileResult struct {
	TileID  int
	Samples int // samples actually added per pixel
	Error   error
}

// WorkerPool renders tiles in parallel. Tiles partition the
// framebuffer, so workers write to it without synchronization.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*worker
	numWorkers  int
	wg          sync.WaitGroup
}

type worker struct {
	id          int
	scene       *scene.Scene
	camera      *Camera
	integrator  integrator.Integrator
	framebuffer *Framebuffer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a pool of numWorkers render workers sharing the
// scene, camera, integrator and framebuffer. numWorkers <= 0 selects
// the CPU count.
func NewWorkerPool(sc *scene.Scene, camera *Camera, integ integrator.Integrator, fb *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer for the worst-case tile count at 8x8 tiles
	maxTiles := ((fb.Width() + 7) / 8) * ((fb.Height() + 7) / 8)

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &worker{
			id:          i,
			scene:       sc,
			camera:      camera,
			integrator:  integ,
			framebuffer: fb,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start launches the workers.
func (wp *WorkerPool) Start() {
	for _, w := range wp.workers {
		wp.wg.Add(1)
		go w.run(&wp.wg)
	}
}

// Stop drains the task queue and waits for the workers to exit.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a tile task.
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Result blocks for the next completed tile.
func (wp *WorkerPool) Result() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the pool size.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (w *worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.renderTile(task)
		w.resultQueue <- TileResult{TileID: task.Tile.ID, Samples: task.Samples}
	}
}

// renderTile adds task.Samples jittered samples to every pixel of the
// tile, reading randomness only from the tile's own stream.
func (w *worker) renderTile(task TileTask) {
	task.Tile.Reseed(task.Pass)
	sampler := core.NewRandomSampler(task.Tile.Random)

	width := float64(w.framebuffer.Width())
	height := float64(w.framebuffer.Height())
	bounds := task.Tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := w.framebuffer.Pixel(x, y)
			for s := 0; s < task.Samples; s++ {
				jitter := sampler.Get2D()
				u := (float64(x) + jitter.X) / width
				v := 1 - (float64(y)+jitter.Y)/height // image y grows downward

				ray := w.camera.GetRay(u, v)
				pixel.AddSample(w.integrator.RayColor(ray, w.scene, sampler))
			}
		}
	}
}
