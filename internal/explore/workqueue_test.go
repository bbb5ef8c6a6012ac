package explore

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/scheduler"
)

var twoPhaseLIFOTrace = Trace{"0", "1", "2", "1", "3", "4", "3", "5", "0", "6", "3", "6", "7", "5", "7", "8"}

func TestDrive_LIFOMatchesRecursive(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, sampleDefs...)

	trace, err := New(m.g).Drive(context.Background(), m.id("0"), scheduler.LIFO)

	require.NoError(t, err)
	if diff := cmp.Diff(sampleTrace, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestDrive_FIFOIsBreadthFirst(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, sampleDefs...)

	trace, err := New(m.g).Drive(context.Background(), m.id("0"), scheduler.FIFO)

	require.NoError(t, err)
	assert.Equal(t, Trace{"0", "1", "6", "2", "3", "3", "7", "4", "5", "5", "8"}, trace)
	for _, label := range []string{"0", "1", "3", "6", "7"} {
		assert.Equal(t, node.Explored, m.state(t, label), "branch %s", label)
	}
}

func TestDrive_TreeOrderMatchesExplore(t *testing.T) {
	t.Parallel()
	a := mustMaze(t, treeDefs...)
	b := mustMaze(t, treeDefs...)

	recursive, err := New(a.g).Explore(context.Background(), a.id("r"))
	require.NoError(t, err)
	driven, err := New(b.g).Drive(context.Background(), b.id("r"), scheduler.LIFO)
	require.NoError(t, err)

	assert.Equal(t, recursive, driven)
}

func TestDrive_ReportsPendingDepth(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, treeDefs...)
	rec := &recorder{}

	_, err := New(m.g, WithObserver(rec)).Drive(context.Background(), m.id("r"), scheduler.LIFO)

	require.NoError(t, err)
	require.NotEmpty(t, rec.events)
	assert.Equal(t, 2, rec.events[0].Pending)
	assert.Equal(t, 0, rec.events[len(rec.events)-1].Pending)
}

func TestDriveTwoPhase_SampleMaze(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	m := mustMaze(t, sampleDefs...)
	rec := &recorder{}

	// --- Act ---
	trace, err := New(m.g, WithObserver(rec)).DriveTwoPhase(context.Background(), m.id("0"), scheduler.LIFO)

	// --- Assert ---
	require.NoError(t, err)
	if diff := cmp.Diff(twoPhaseLIFOTrace, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []Outcome{Entered, Finished, Revisited}, rec.outcomes("3"))
	assert.Equal(t, []Outcome{Entered, Finished}, rec.outcomes("0"))
	for _, label := range []string{"0", "1", "3", "6", "7"} {
		assert.Equal(t, node.Explored, m.state(t, label), "branch %s", label)
	}
}

func TestDriveTwoPhase_FIFO(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, sampleDefs...)
	rec := &recorder{}

	trace, err := New(m.g, WithObserver(rec)).DriveTwoPhase(context.Background(), m.id("0"), scheduler.FIFO)

	require.NoError(t, err)
	assert.Equal(t, Trace{"0", "0", "1", "6", "1", "2", "6", "3", "3", "7", "3", "4", "5", "7", "5", "8"}, trace)
	assert.Equal(t, 5, rec.count(Entered))
	assert.Equal(t, 5, rec.count(Finished))
}

func TestDriveTwoPhase_TreeEmitsEachBranchTwice(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, treeDefs...)

	trace, err := New(m.g).DriveTwoPhase(context.Background(), m.id("r"), scheduler.LIFO)

	require.NoError(t, err)
	for _, d := range treeDefs {
		want := 1
		if d.left != "" {
			want = 2
		}
		assert.Equal(t, want, trace.Count(d.label), "label %s", d.label)
	}
}

func TestStep_SchedulesSelfThenLeft(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	m := mustMaze(t, sampleDefs...)
	x := New(m.g)
	q := scheduler.NewLIFO(m.id("0"))
	var trace Trace

	// --- Act ---
	ev, err := x.Step(context.Background(), q, &trace)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, Entered, ev.Outcome)
	assert.Equal(t, node.Unexplored, ev.From)
	assert.Equal(t, node.PartiallyExplored, ev.To)
	assert.Equal(t, []nodeid.ID{m.id("1"), m.id("0")}, q.Snapshot())
	assert.Equal(t, Trace{"0"}, trace)
}

func TestStepper_DrivesOneNodeAtATime(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, sampleDefs...)
	s := NewStepper(New(m.g), m.id("0"), scheduler.LIFO)
	ctx := context.Background()

	assert.Equal(t, []nodeid.ID{m.id("0")}, s.Pending())

	steps := 0
	for !s.Done() {
		_, err := s.Next(ctx)
		require.NoError(t, err)
		steps++
		assert.Len(t, s.Trace(), steps)
	}

	assert.Equal(t, len(twoPhaseLIFOTrace), steps)
	assert.Equal(t, twoPhaseLIFOTrace, s.Trace())
	assert.Empty(t, s.Pending())
}

func TestStepper_AbandonedRunIsResettable(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	m := mustMaze(t, sampleDefs...)
	x := New(m.g)
	s := NewStepper(x, m.id("0"), scheduler.LIFO)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_, err := s.Next(ctx)
		require.NoError(t, err)
	}
	require.Equal(t, node.PartiallyExplored, m.state(t, "0"))
	require.Equal(t, node.Explored, m.state(t, "1"))
	require.Equal(t, node.Unexplored, m.state(t, "3"))

	// --- Act ---
	trace, err := x.Unexplore(ctx, m.id("0"))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, Trace{"0", "1", "2", "3", "6"}, trace)
	for _, n := range m.g.AllNodes(ctx) {
		st, err := m.g.State(ctx, n.ID)
		require.NoError(t, err)
		assert.Equal(t, node.Unexplored, st, "node %s", n.Label)
	}
}

func TestDrain_EmptyQueueIsContractViolation(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, sampleDefs...)
	x := New(m.g)
	var trace Trace

	cv := violation(func() {
		_ = x.Drain(context.Background(), scheduler.NewLIFO(), &trace)
	})

	require.NotNil(t, cv, "draining an empty queue must panic")
	assert.Equal(t, "Pop", cv.Op)
	assert.Empty(t, trace)
}

func TestStepper_NextAfterDonePanics(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, leaf("only"))
	s := NewStepper(New(m.g), m.id("only"), scheduler.FIFO)

	_, err := s.Next(context.Background())
	require.NoError(t, err)
	require.True(t, s.Done())

	cv := violation(func() { _, _ = s.Next(context.Background()) })
	assert.NotNil(t, cv)
}

func TestDrive_CancelledContext(t *testing.T) {
	t.Parallel()
	m := mustMaze(t, sampleDefs...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}

	_, err := New(m.g, WithObserver(rec)).Drive(ctx, m.id("0"), scheduler.LIFO)

	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, rec.summaries, 1)
	assert.ErrorIs(t, rec.summaries[0].Err, context.Canceled)
}
