package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"turbsim/deque"
	"turbsim/grid"
	"turbsim/model"
	"turbsim/sim"
)

// frames kept for replay to a viewer that joins mid-run
const historyDepth = 16

// Hub bridges one websocket connection and the simulation: requests come
// in on msg, replies go out per type. run and history are touched by both
// the request and the response goroutine, so they only move through the
// mutex-guarded accessors below.
type Hub struct {
	mu      sync.Mutex
	run     *sim.Run
	history *deque.FrameRing

	presets []sim.Preset
	conn    *websocket.Conn
	done    chan struct{}

	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Msg
	frames  chan model.Msg
	stopped chan model.Msg
}

func NewHub() *Hub {
	presets, err := sim.LoadPresets("conf/presets.json")
	if err != nil {
		log.WithError(err).Warn("presets not loaded")
	}
	return &Hub{
		run:     sim.NewRunFromConfig(),
		presets: presets,
		history: deque.NewFrameRing(historyDepth),
		done:    make(chan struct{}),
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Msg, 10),
		frames:  make(chan model.Msg, 10),
		stopped: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			switch msg.Type {
			case model.MsgEnv:
				var env model.Env
				if err := json.Unmarshal([]byte(msg.Content), &env); err != nil {
					log.WithError(err).Error("bad env request")
					continue
				}
				if err := h.applyEnv(env); err != nil {
					log.WithError(err).Error("env rejected")
					continue
				}
				h.envSet <- model.Msg{Type: model.MsgEnvSet, Content: "env is set"}
			case model.MsgStart:
				h.started <- model.Msg{Type: model.MsgStarted}
			case model.MsgHistory:
				h.replayHistory()
			case model.MsgStop:
				h.stopped <- model.Msg{Type: model.MsgStopped, Content: "stopped"}
			default:
				log.WithField("type", msg.Type).Warn("no such type")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.envSet:
			h.write(reply)
		case reply := <-h.started:
			frame := h.executeFrame()
			data, err := json.Marshal(frame)
			if err != nil {
				log.WithError(err).Error("marshal frame")
				continue
			}
			reply.Content = string(data)
			h.write(reply)
		case reply := <-h.frames:
			h.write(reply)
		case reply := <-h.stopped:
			h.write(reply)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(msg model.Msg) {
	if err := h.conn.WriteJSON(&msg); err != nil {
		log.WithError(err).Error("write to viewer")
	}
}

// executeFrame evaluates one frame against a single consistent run: the
// run pointer is snapshotted once, so an env swap arriving mid-execution
// cannot mix model pairs within the frame.
func (h *Hub) executeFrame() *model.ProfileData {
	run := h.currentRun()
	frame := buildFrame(run, run.Execute())
	h.pushFrame(frame)
	return frame
}

func (h *Hub) currentRun() *sim.Run {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.run
}

func (h *Hub) setRun(r *sim.Run) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.run = r
}

func (h *Hub) pushFrame(f *model.ProfileData) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.history.AddLast(f)
}

// historyFrames copies the retained frames out under the lock so the
// replay walk never overlaps a concurrent push.
func (h *Hub) historyFrames() []*model.ProfileData {
	h.mu.Lock()
	defer h.mu.Unlock()
	frames := make([]*model.ProfileData, 0, h.history.Size())
	h.history.Traverse(func(_ int, f *model.ProfileData) {
		frames = append(frames, f)
	})
	return frames
}

// applyEnv swaps the hub's run for one built from the request. The grid is
// rebuilt from config; the request only picks models and parameters.
func (h *Hub) applyEnv(env model.Env) error {
	c := sim.Cfg()
	g := grid.New(c.ZMin, c.Height, c.NZ, c.Width, c.NY)
	run, err := sim.BuildRunFromEnv(env, h.presets, g)
	if err != nil {
		return err
	}
	h.setRun(run)
	log.WithFields(log.Fields{
		"preset":       env.Preset,
		"stress_model": run.Stress.Name(),
		"prof_model":   run.Prof.Name(),
	}).Info("environment set")
	return nil
}

// replayHistory re-sends the retained frames, delta-encoded: a replay is a
// burst, so it goes out in the compact wire form.
func (h *Hub) replayHistory() {
	for _, f := range h.historyFrames() {
		data, err := json.Marshal(EncodeFrame(f))
		if err != nil {
			log.WithError(err).Error("marshal history frame")
			return
		}
		h.frames <- model.Msg{Type: model.MsgFrame, Content: string(data)}
	}
}

func buildFrame(r *sim.Run, res *sim.Result) *model.ProfileData {
	return &model.ProfileData{
		StressModel: r.Stress.Name(),
		ProfModel:   r.Prof.Name(),
		Z:           r.Grid.Z(),
		U:           res.U,
		Upwp:        res.Stress.Upwp,
		Vpwp:        res.Stress.Vpwp,
		Upvp:        res.Stress.Upvp,
	}
}
