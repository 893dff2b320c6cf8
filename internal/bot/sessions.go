package bot

import "sync"

// RegState identifies a step of the registration conversation
type RegState string

const (
	StateAge          RegState = "age"
	StateGender       RegState = "gender"
	StateLocation     RegState = "location"
	StateDenomination RegState = "denomination"
	StateAttendance   RegState = "attendance"
	StateBio          RegState = "bio"
	StatePhoto        RegState = "photo"
	StateVideo        RegState = "video"
)

// Draft holds the profile fields collected so far. Fields are populated
// strictly in state order and the whole draft is dropped on cancel.
type Draft struct {
	Age          int
	Gender       string
	Location     string
	Denomination string
	Attendance   string
	Bio          string
	PhotoFileID  string
	VideoFileID  string
}

// Registration is the per-user conversation state plus the in-progress draft
type Registration struct {
	State RegState
	Draft Draft
}

// sessionStore keys registrations by Telegram user ID and serializes event
// processing per user through a FIFO mailbox, so a step handler never sees
// a draft mutated by a second in-flight event for the same user.
type sessionStore struct {
	mu    sync.Mutex
	regs  map[int64]*Registration
	boxes map[int64]*mailbox
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		regs:  make(map[int64]*Registration),
		boxes: make(map[int64]*mailbox),
	}
}

// Get returns the active registration for a user, if any
func (s *sessionStore) Get(userID int64) (*Registration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.regs[userID]
	return reg, ok
}

// Start creates a fresh registration draft for a user, replacing any
// previous one
func (s *sessionStore) Start(userID int64) *Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg := &Registration{State: StateAge}
	s.regs[userID] = reg
	return reg
}

// Delete drops the registration for a user
func (s *sessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regs, userID)
}

// Enqueue schedules fn on the user's mailbox. Jobs for one user run
// one at a time in enqueue order; jobs for different users run freely.
func (s *sessionStore) Enqueue(userID int64, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	box, ok := s.boxes[userID]
	if !ok {
		box = &mailbox{}
		s.boxes[userID] = box
	}
	box.queue = append(box.queue, fn)
	if !box.running {
		box.running = true
		go s.drain(userID, box)
	}
}

// mailbox is a per-user FIFO work queue drained by at most one goroutine.
// Its fields are guarded by the owning store's mutex.
type mailbox struct {
	queue   []func()
	running bool
}

// drain runs the mailbox jobs in order. When the queue empties the box is
// removed from the store, so idle users leave nothing behind.
func (s *sessionStore) drain(userID int64, box *mailbox) {
	for {
		s.mu.Lock()
		if len(box.queue) == 0 {
			box.running = false
			delete(s.boxes, userID)
			s.mu.Unlock()
			return
		}
		fn := box.queue[0]
		box.queue = box.queue[1:]
		s.mu.Unlock()

		fn()
	}
}

// boxCount reports the number of live mailboxes
func (s *sessionStore) boxCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boxes)
}
