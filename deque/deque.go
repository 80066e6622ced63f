package deque

import "turbsim/model"

// Fixed-capacity ring over pushed profile frames, backed by a flat array
// so the replay walk stays cache-friendly. The hub keeps the most recent
// frames here so a viewer joining mid-run can ask for the history.

type FrameRing struct {
	frames []*model.ProfileData
	head   int // index of the oldest frame
	size   int
}

func NewFrameRing(capacity int) *FrameRing {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameRing{frames: make([]*model.ProfileData, capacity)}
}

func (r *FrameRing) Size() int { return r.size }

func (r *FrameRing) Cap() int { return len(r.frames) }

func (r *FrameRing) IsEmpty() bool { return r.size == 0 }

func (r *FrameRing) IsFull() bool { return r.size == len(r.frames) }

// AddLast appends a frame, evicting the oldest one when the ring is full.
func (r *FrameRing) AddLast(f *model.ProfileData) {
	if r.IsFull() {
		r.frames[r.head] = f
		r.head = (r.head + 1) % len(r.frames)
		return
	}
	r.frames[(r.head+r.size)%len(r.frames)] = f
	r.size++
}

// RemoveFirst pops the oldest frame, nil when empty.
func (r *FrameRing) RemoveFirst() *model.ProfileData {
	if r.IsEmpty() {
		return nil
	}
	f := r.frames[r.head]
	r.frames[r.head] = nil
	r.head = (r.head + 1) % len(r.frames)
	r.size--
	return f
}

// Traverse visits frames oldest to newest.
func (r *FrameRing) Traverse(fn func(i int, f *model.ProfileData)) {
	for i := 0; i < r.size; i++ {
		fn(i, r.frames[(r.head+i)%len(r.frames)])
	}
}
