package comp

import (
	"context"

	"github.com/google/uuid"
	"github.com/llmarena/backend/comp/compdomain"
)

// FeedUpdate is one submission feed event: exactly one field is set.
type FeedUpdate struct {
	Created *compdomain.Submission
	Updated *compdomain.Submission
}

const feedListenerBuf = 64

// appendToFeed prepends a new submission and evicts the oldest entries past
// the cap. Runs on the run loop.
func (s *session) appendToFeed(st *sessionState, subm compdomain.Submission) {
	st.feed = append([]compdomain.Submission{subm}, st.feed...)
	if len(st.feed) > s.opts.FeedCap {
		st.feed = st.feed[:s.opts.FeedCap]
	}
	notifyListeners(st, FeedUpdate{Created: cloneSubm(subm)})
}

// notifyListeners fans an update out to every subscriber. A listener that
// has fallen behind loses its oldest pending update instead of blocking the
// run loop.
func notifyListeners(st *sessionState, update FeedUpdate) {
	for _, listener := range st.listeners {
		if len(listener) == cap(listener) {
			<-listener
		}
		listener <- update
	}
}

func cloneSubm(subm compdomain.Submission) *compdomain.Submission {
	cp := subm
	cp.TestCases = append([]compdomain.TestCaseRes(nil), subm.TestCases...)
	return &cp
}

// SubscribeFeed registers a listener for a session's submission feed. The
// returned cancel function removes the listener and closes the channel.
func (s *CompSrvc) SubscribeFeed(ctx context.Context, compID uuid.UUID) (<-chan FeedUpdate, func(), error) {
	sess, err := s.getSession(compID)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan FeedUpdate, feedListenerBuf)
	err = sess.read(ctx, func(st *sessionState) {
		st.listeners = append(st.listeners, ch)
	})
	if err != nil {
		return nil, nil, err
	}

	unsubscribe := func() {
		sess.post(func(st *sessionState) {
			for i, listener := range st.listeners {
				if listener == ch {
					st.listeners = append(st.listeners[:i], st.listeners[i+1:]...)
					close(ch)
					break
				}
			}
		})
	}
	return ch, unsubscribe, nil
}
