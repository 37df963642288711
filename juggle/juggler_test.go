package juggle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-rcpt"
	"github.com/zostay/go-rcpt/envelope"
	"github.com/zostay/go-rcpt/juggle"
)

func TestAddAcrossFields(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	assert.True(t, j.AddTo("a@x.com,b@x.com", "Alice,Bob"))
	assert.True(t, j.AddCc("c@x.com", "Carl"))

	require.Len(t, env.Recipients(rcpt.To), 2)
	require.Len(t, env.Recipients(rcpt.Cc), 1)

	// the duplicate index spans To, Cc, and Bcc
	assert.False(t, j.AddBcc("a@x.com", nil))
	assert.Empty(t, env.Recipients(rcpt.Bcc))

	// one bad apple does not abort the batch
	assert.True(t, j.AddTo("junk here,d@x.com", nil))
	require.Len(t, env.Recipients(rcpt.To), 3)
}

func TestAddJugglingMovesAddress(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env, juggle.WithJuggling())

	require.True(t, j.AddTo("bob@x.com", "Bob"))
	require.True(t, j.AddCc("Bob@X.com", "Bobby"))

	assert.Empty(t, env.Recipients(rcpt.To))
	require.Len(t, env.Recipients(rcpt.Cc), 1)
	assert.Equal(t, rcpt.Entry{Address: "Bob@X.com", Name: "Bobby"},
		env.Recipients(rcpt.Cc)[0])

	// the delivery queue followed the move
	q := env.Queue()
	require.Len(t, q, 1)
	assert.Equal(t, rcpt.Cc, q[0].Field)
}

func TestAddWithoutJugglingBlocksMove(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.AddTo("bob@x.com", "Bob"))
	assert.False(t, j.AddCc("bob@x.com", "Bobby"))
	require.Len(t, env.Recipients(rcpt.To), 1)
	assert.Empty(t, env.Recipients(rcpt.Cc))
}

func TestSetIsIdempotent(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.SetCc("a@x.com,b@x.com", "Alice,Bob"))
	require.True(t, j.SetCc("a@x.com,b@x.com", "Alice,Bob"))

	cc := env.Recipients(rcpt.Cc)
	require.Len(t, cc, 2)
	assert.Equal(t, "a@x.com", cc[0].Address)
	assert.Equal(t, "b@x.com", cc[1].Address)
	assert.Len(t, env.Queue(), 2)
}

func TestSetFromLastCallWins(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	assert.True(t, j.SetFrom("x@x.com,y@y.com", "Xavier,Yolanda"))

	from, ok := env.From()
	require.True(t, ok)
	assert.Equal(t, rcpt.Entry{Address: "y@y.com", Name: "Yolanda"}, from)

	// the reported result is the final delegate call's, not an aggregate
	assert.False(t, j.SetFrom("z@z.com,junk here", nil))
	assert.False(t, j.SetFrom(nil, nil))
}

func TestRemoveKeepsListContiguous(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.AddTo("a@x.com,b@x.com,c@x.com", nil))
	assert.True(t, j.RemoveTo("B@x.com "))

	to := env.Recipients(rcpt.To)
	require.Len(t, to, 2)
	assert.Equal(t, "a@x.com", to[0].Address)
	assert.Equal(t, "c@x.com", to[1].Address)

	// index and queue released the address, so it can come back
	assert.False(t, env.Held("b@x.com"))
	assert.Len(t, env.Queue(), 2)
	assert.True(t, j.AddCc("b@x.com", nil))
}

func TestRemoveAbsentIsFalse(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.AddTo("a@x.com", nil))

	assert.False(t, j.RemoveTo("nobody@x.com"))
	assert.False(t, j.RemoveRecipient("nobody@x.com"))
	assert.Len(t, env.Recipients(rcpt.To), 1)
	assert.Len(t, env.Queue(), 1)
}

func TestRemoveRecipientSearchesInOrder(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.AddBcc("hidden@x.com", nil))
	assert.True(t, j.RemoveRecipient("hidden@x.com"))
	assert.Empty(t, env.Recipients(rcpt.Bcc))
	assert.Empty(t, env.Queue())
}

func TestRemoveByLabel(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.AddCc("a@x.com", nil))

	assert.False(t, j.Remove("xyz", "a@x.com"))
	assert.Len(t, env.Recipients(rcpt.Cc), 1)

	assert.True(t, j.Remove("C-C", "a@x.com"))
	assert.Empty(t, env.Recipients(rcpt.Cc))
}

func TestReplyToKeyedStorage(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.AddReplyTo("r@x.com", "R"))
	require.True(t, j.AddReplyTo("R@x.com", "Really R"))

	rt := env.Recipients(rcpt.ReplyTo)
	require.Len(t, rt, 1)
	assert.Equal(t, "Really R", rt[0].Name)

	rq := env.ReplyQueue()
	require.Len(t, rq, 1)
	assert.Equal(t, "Really R", rq[0].Name)

	assert.True(t, j.RemoveReplyTo("r@x.com"))
	assert.Empty(t, env.Recipients(rcpt.ReplyTo))
	assert.Empty(t, env.ReplyQueue())
}

func TestSetReplyToReplacesList(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	require.True(t, j.AddReplyTo("old@x.com", nil))
	require.True(t, j.SetReplyTo("new@x.com", "New"))

	rt := env.Recipients(rcpt.ReplyTo)
	require.Len(t, rt, 1)
	assert.Equal(t, "new@x.com", rt[0].Address)
	require.Len(t, env.ReplyQueue(), 1)
}

func TestAliasSpellings(t *testing.T) {
	t.Parallel()

	env := envelope.New()
	j := juggle.New(env)

	assert.True(t, j.AddTO("a@x.com", nil))
	assert.True(t, j.AddCC("b@x.com", nil))
	assert.True(t, j.AddBCC("c@x.com", nil))
	assert.True(t, j.SetAddress("d@x.com", nil))

	assert.Len(t, env.Recipients(rcpt.To), 1)
	assert.Equal(t, "d@x.com", env.Recipients(rcpt.To)[0].Address)
}
