package server

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbsim/model"
)

func TestBuildFrame(t *testing.T) {
	h := NewHub()
	res := h.run.Execute()
	frame := buildFrame(h.run, res)

	require.Equal(t, h.run.Grid.NZ(), len(frame.Z))
	assert.Equal(t, "tidal", frame.StressModel)
	assert.Equal(t, "log", frame.ProfModel)
	assert.Equal(t, res.U, frame.U)
	assert.Equal(t, res.Stress.Upwp, frame.Upwp)
}

func TestApplyEnv(t *testing.T) {
	h := NewHub()
	err := h.applyEnv(model.Env{
		StressModel: "uniform",
		ProfModel:   "powerlaw",
		Upwp:        -0.04,
		URef:        1.2,
		ZRef:        5,
		PLExp:       0.143,
	})
	require.NoError(t, err)
	assert.Equal(t, "uniform", h.run.Stress.Name())
	assert.Equal(t, "powerlaw", h.run.Prof.Name())

	assert.Error(t, h.applyEnv(model.Env{StressModel: "spectral", ProfModel: "log"}))
}

func TestHistoryReplayOrder(t *testing.T) {
	h := NewHub()
	for i := 0; i < 3; i++ {
		h.executeFrame()
	}
	h.replayHistory()
	require.Equal(t, 3, len(h.frames))
	for i := 0; i < 3; i++ {
		msg := <-h.frames
		assert.Equal(t, model.MsgFrame, msg.Type)
		assert.NotEmpty(t, msg.Content)
	}
}

// Env swaps arriving while frames execute must never produce a frame mixing
// one request's stress model with another's profile model.
func TestConcurrentEnvSwapKeepsFramesConsistent(t *testing.T) {
	h := NewHub()
	envs := []model.Env{
		{StressModel: "tidal", ProfModel: "log", Ustar: 0.5, Zref: 10, URef: 2, ZRef: 10, Z0: 0.05},
		{StressModel: "uniform", ProfModel: "powerlaw", Upwp: -0.04, URef: 1.2, ZRef: 5, PLExp: 0.143},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			assert.NoError(t, h.applyEnv(envs[i%2]))
		}
	}()

	for i := 0; i < 100; i++ {
		f := h.executeFrame()
		switch f.StressModel {
		case "tidal":
			assert.Equal(t, "log", f.ProfModel)
		case "uniform":
			assert.Equal(t, "powerlaw", f.ProfModel)
		default:
			t.Fatalf("unexpected stress model %q", f.StressModel)
		}
		h.historyFrames()
	}
	wg.Wait()
}

func TestDoneReleasesHubGoroutines(t *testing.T) {
	h := NewHub()
	exited := make(chan struct{}, 2)
	go func() {
		h.handleRequest()
		exited <- struct{}{}
	}()
	go func() {
		h.handleResponse()
		exited <- struct{}{}
	}()

	close(h.done)
	for i := 0; i < 2; i++ {
		select {
		case <-exited:
		case <-time.After(time.Second):
			t.Fatal("hub goroutine still running after shutdown")
		}
	}
}
