package alias

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore records every mapping it is asked to save.
type memStore struct {
	saves []map[string]string
	err   error
}

func (m *memStore) Save(aliases map[string]string) error {
	snapshot := make(map[string]string, len(aliases))
	for k, v := range aliases {
		snapshot[k] = v
	}
	m.saves = append(m.saves, snapshot)
	return m.err
}

// cannedConfirmer answers from a fixed list and counts the questions.
type cannedConfirmer struct {
	answers []Answer
	asked   int
}

func (c *cannedConfirmer) Confirm(string) (Answer, error) {
	if c.asked >= len(c.answers) {
		return AnswerInvalid, errors.New("unexpected prompt")
	}
	a := c.answers[c.asked]
	c.asked++
	return a, nil
}

func newTestRegistry(aliases map[string]string) (*Registry, *memStore, *bytes.Buffer) {
	st := &memStore{}
	var out bytes.Buffer
	return New(aliases, st, WithOutput(&out)), st, &out
}

func TestLookup(t *testing.T) {
	r, _, _ := newTestRegistry(map[string]string{"gp": "git push"})

	cmd, ok := r.Lookup("gp")
	assert.True(t, ok)
	assert.Equal(t, "git push", cmd)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestResolve_FallsBackToLiteral(t *testing.T) {
	r, _, _ := newTestRegistry(map[string]string{"gp": "git push --force"})

	assert.Equal(t, "git push --force", r.Resolve("gp"))
	assert.Equal(t, "ls -la", r.Resolve("ls -la"))
}

func TestUpsert_InsertsNewName(t *testing.T) {
	r, st, _ := newTestRegistry(nil)
	confirm := &cannedConfirmer{}

	outcome, err := r.Upsert("gp", "git push", confirm)
	require.NoError(t, err)
	assert.Equal(t, Inserted, outcome)
	assert.Zero(t, confirm.asked, "no prompt for a new name")

	cmd, ok := r.Lookup("gp")
	require.True(t, ok)
	assert.Equal(t, "git push", cmd)

	require.Len(t, st.saves, 1)
	assert.Equal(t, map[string]string{"gp": "git push"}, st.saves[0])
}

func TestUpsert_ExistingYesOverwrites(t *testing.T) {
	r, st, _ := newTestRegistry(map[string]string{"gp": "git push"})
	confirm := &cannedConfirmer{answers: []Answer{AnswerYes}}

	outcome, err := r.Upsert("gp", "git push --force", confirm)
	require.NoError(t, err)
	assert.Equal(t, Updated, outcome)
	assert.Equal(t, 1, confirm.asked)

	cmd, _ := r.Lookup("gp")
	assert.Equal(t, "git push --force", cmd)
	require.Len(t, st.saves, 1)
	assert.Equal(t, "git push --force", st.saves[0]["gp"])
}

func TestUpsert_ExistingNoKeeps(t *testing.T) {
	r, st, out := newTestRegistry(map[string]string{"gp": "git push"})

	outcome, err := r.Upsert("gp", "git push --force", &cannedConfirmer{answers: []Answer{AnswerNo}})
	require.NoError(t, err)
	assert.Equal(t, Unchanged, outcome)

	cmd, _ := r.Lookup("gp")
	assert.Equal(t, "git push", cmd)
	assert.Empty(t, st.saves)
	assert.Equal(t, "Not updating alias.\n", out.String())
}

func TestUpsert_SameCommandStillPrompts(t *testing.T) {
	r, _, _ := newTestRegistry(map[string]string{"gp": "git push"})
	confirm := &cannedConfirmer{answers: []Answer{AnswerNo}}

	_, err := r.Upsert("gp", "git push", confirm)
	require.NoError(t, err)
	assert.Equal(t, 1, confirm.asked)
}

func TestUpsert_InvalidAnswerTreatedAsNo(t *testing.T) {
	r, st, out := newTestRegistry(map[string]string{"gp": "git push"})

	outcome, err := r.Upsert("gp", "git pull", &cannedConfirmer{answers: []Answer{AnswerInvalid}})
	require.NoError(t, err)
	assert.Equal(t, Unchanged, outcome)

	cmd, _ := r.Lookup("gp")
	assert.Equal(t, "git push", cmd)
	assert.Empty(t, st.saves)
	assert.Contains(t, out.String(), "Invalid input, assuming no")
	assert.Contains(t, out.String(), "Not updating alias.")
}

func TestUpsert_ConfirmErrorAborts(t *testing.T) {
	r, st, _ := newTestRegistry(map[string]string{"gp": "git push"})

	_, err := r.Upsert("gp", "git pull", &cannedConfirmer{})
	require.Error(t, err)
	assert.Empty(t, st.saves)
}

func TestUpsert_SaveFailureKeepsMemory(t *testing.T) {
	st := &memStore{err: errors.New("disk full")}
	r := New(nil, st, WithOutput(&bytes.Buffer{}))

	outcome, err := r.Upsert("gp", "git push", &cannedConfirmer{})
	require.Error(t, err)
	assert.Equal(t, Inserted, outcome)

	var perr *PersistError
	require.ErrorAs(t, err, &perr)
	assert.EqualError(t, perr.Err, "disk full")

	cmd, ok := r.Lookup("gp")
	assert.True(t, ok)
	assert.Equal(t, "git push", cmd)
}

func TestUpsert_ThroughPromptConfirmer(t *testing.T) {
	r, _, _ := newTestRegistry(map[string]string{"gp": "git push"})
	var prompts bytes.Buffer
	confirm := NewPromptConfirmer(bytes.NewBufferString("Y\n"), &prompts)

	outcome, err := r.Upsert("gp", "git push --force", confirm)
	require.NoError(t, err)
	assert.Equal(t, Updated, outcome)
	assert.Contains(t, prompts.String(), UpdatePrompt)
}

func TestList_SortedByName(t *testing.T) {
	r, _, _ := newTestRegistry(map[string]string{"b": "cmd2", "a": "cmd1"})

	assert.Equal(t, []Entry{
		{Name: "a", Command: "cmd1"},
		{Name: "b", Command: "cmd2"},
	}, r.List())
}

func TestList_Empty(t *testing.T) {
	r, _, _ := newTestRegistry(nil)
	assert.Empty(t, r.List())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "inserted", Inserted.String())
	assert.Equal(t, "updated", Updated.String())
	assert.Equal(t, "unchanged", Unchanged.String())
}
