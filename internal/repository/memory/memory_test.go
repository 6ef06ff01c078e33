package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/fixtures"
	"github.com/samandr77/microservices/intranet/internal/repository/memory"
)

func TestIdentityRepository_Authenticate(t *testing.T) {
	t.Parallel()

	repo, err := memory.NewIdentityRepository(fixtures.Accounts(), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantID   string
		wantErr  error
	}{
		{"employee", "employe@entreprise.fr", fixtures.DefaultPassword, "1", nil},
		{"supervisor with mixed case and spaces", "  Superviseur@Entreprise.fr ", fixtures.DefaultPassword, "2", nil},
		{"wrong password", "employe@entreprise.fr", "secret", "", entity.ErrInvalidCredentials},
		{"unknown email", "inconnu@entreprise.fr", fixtures.DefaultPassword, "", entity.ErrInvalidCredentials},
		{"empty password", "employe@entreprise.fr", "", "", entity.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			identity, err := repo.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantID, identity.ID)
		})
	}
}

func TestIdentityRepository_Directory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	repo, err := memory.NewIdentityRepository(fixtures.Accounts(), bcrypt.MinCost)
	require.NoError(t, err)

	identity, err := repo.IdentityByID(ctx, "5")
	require.NoError(t, err)
	require.Equal(t, entity.RoleSupervisor, identity.Role)

	_, err = repo.IdentityByID(ctx, "42")
	require.ErrorIs(t, err, entity.ErrNotFound)

	all, err := repo.Identities(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(fixtures.Accounts()))

	team, err := repo.Subordinates(ctx, "2")
	require.NoError(t, err)
	require.Len(t, team, 2)
	require.Equal(t, "1", team[0].ID)
	require.Equal(t, "3", team[1].ID)

	none, err := repo.Subordinates(ctx, "1")
	require.NoError(t, err)
	require.Empty(t, none)
}

type NotificationRepositoryTestSuite struct {
	suite.Suite
	repo *memory.NotificationRepository
}

func (ts *NotificationRepositoryTestSuite) SetupTest() {
	ts.repo = memory.NewNotificationRepository(fixtures.Notifications())
}

func TestNotificationRepositoryTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(NotificationRepositoryTestSuite))
}

func (ts *NotificationRepositoryTestSuite) TestNotificationsByUser() {
	ctx := context.Background()

	list, err := ts.repo.NotificationsByUser(ctx, "1")
	ts.Require().NoError(err)
	ts.Require().Len(list, 3)
	ts.Require().Equal("1", list[0].ID)
	ts.Require().Equal("2", list[1].ID)
	ts.Require().Equal("3", list[2].ID)
	ts.Require().Equal(2, entity.UnreadCount(list))

	empty, err := ts.repo.NotificationsByUser(ctx, "4")
	ts.Require().NoError(err)
	ts.Require().NotNil(empty)
	ts.Require().Empty(empty)
}

func (ts *NotificationRepositoryTestSuite) TestMarkRead() {
	ctx := context.Background()

	ts.Run("unread entry", func() {
		changed, err := ts.repo.MarkRead(ctx, "1", "1")
		ts.Require().NoError(err)
		ts.Require().True(changed)
	})

	ts.Run("already read", func() {
		changed, err := ts.repo.MarkRead(ctx, "1", "1")
		ts.Require().NoError(err)
		ts.Require().False(changed)
	})

	ts.Run("owned by another user", func() {
		changed, err := ts.repo.MarkRead(ctx, "1", "4")
		ts.Require().NoError(err)
		ts.Require().False(changed)

		list, err := ts.repo.NotificationsByUser(ctx, "2")
		ts.Require().NoError(err)
		ts.Require().False(list[0].Read)
	})

	ts.Run("absent", func() {
		changed, err := ts.repo.MarkRead(ctx, "1", "missing")
		ts.Require().NoError(err)
		ts.Require().False(changed)
	})
}

func (ts *NotificationRepositoryTestSuite) TestMarkAllRead() {
	ctx := context.Background()

	marked, err := ts.repo.MarkAllRead(ctx, "1")
	ts.Require().NoError(err)
	ts.Require().Equal(1+1, marked)

	list, err := ts.repo.NotificationsByUser(ctx, "1")
	ts.Require().NoError(err)
	ts.Require().Zero(entity.UnreadCount(list))

	other, err := ts.repo.NotificationsByUser(ctx, "2")
	ts.Require().NoError(err)
	ts.Require().Equal(1, entity.UnreadCount(other))
}

func (ts *NotificationRepositoryTestSuite) TestCreateNotification() {
	ctx := context.Background()

	n := entity.Notification{ID: "n-1", UserID: "4", Title: "Bienvenue", Category: entity.CategoryNews}

	ts.Require().NoError(ts.repo.CreateNotification(ctx, n))
	ts.Require().ErrorIs(ts.repo.CreateNotification(ctx, n), entity.ErrAlreadyExists)

	list, err := ts.repo.NotificationsByUser(ctx, "4")
	ts.Require().NoError(err)
	ts.Require().Len(list, 1)
	ts.Require().Equal("n-1", list[0].ID)
}

type MessageRepositoryTestSuite struct {
	suite.Suite
	repo *memory.MessageRepository
}

func (ts *MessageRepositoryTestSuite) SetupTest() {
	ts.repo = memory.NewMessageRepository(fixtures.Messages())
}

func TestMessageRepositoryTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MessageRepositoryTestSuite))
}

func (ts *MessageRepositoryTestSuite) TestConversationBothDirections() {
	ctx := context.Background()

	thread, err := ts.repo.Conversation(ctx, "1", "2")
	ts.Require().NoError(err)
	ts.Require().Len(thread, 3)
	ts.Require().Equal("1", thread[0].SenderID)
	ts.Require().Equal("2", thread[1].SenderID)
	ts.Require().Equal("3", thread[2].ID)

	mirrored, err := ts.repo.Conversation(ctx, "2", "1")
	ts.Require().NoError(err)
	ts.Require().Equal(thread, mirrored)

	none, err := ts.repo.Conversation(ctx, "1", "3")
	ts.Require().NoError(err)
	ts.Require().NotNil(none)
	ts.Require().Empty(none)
}

func (ts *MessageRepositoryTestSuite) TestCreateMessage() {
	ctx := context.Background()

	attachment := "messages/3/plan.pdf"
	m := entity.Message{
		ID:         "m-1",
		SenderID:   "3",
		ReceiverID: "1",
		Content:    "Salut",
		Attachment: &attachment,
		CreatedAt:  time.Date(2025, time.October, 2, 8, 0, 0, 0, time.UTC),
	}

	ts.Require().NoError(ts.repo.CreateMessage(ctx, m))
	ts.Require().ErrorIs(ts.repo.CreateMessage(ctx, m), entity.ErrAlreadyExists)

	attachment = "changed"

	thread, err := ts.repo.Conversation(ctx, "1", "3")
	ts.Require().NoError(err)
	ts.Require().Len(thread, 1)
	ts.Require().Equal("messages/3/plan.pdf", *thread[0].Attachment)
}

func (ts *MessageRepositoryTestSuite) TestMarkConversationRead() {
	ctx := context.Background()

	// only what "2" sent to "1" is affected
	marked, err := ts.repo.MarkConversationRead(ctx, "2", "1")
	ts.Require().NoError(err)
	ts.Require().Zero(marked)

	marked, err = ts.repo.MarkConversationRead(ctx, "1", "2")
	ts.Require().NoError(err)
	ts.Require().Equal(1, marked)

	marked, err = ts.repo.MarkConversationRead(ctx, "1", "2")
	ts.Require().NoError(err)
	ts.Require().Zero(marked)

	thread, err := ts.repo.Conversation(ctx, "1", "2")
	ts.Require().NoError(err)

	for _, m := range thread {
		ts.Require().True(m.Read)
	}
}

type RequestRepositoryTestSuite struct {
	suite.Suite
	repo *memory.RequestRepository
}

func (ts *RequestRepositoryTestSuite) SetupTest() {
	ts.repo = memory.NewRequestRepository(fixtures.Requests())
}

func TestRequestRepositoryTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RequestRepositoryTestSuite))
}

func (ts *RequestRepositoryTestSuite) TestRequestsByQuery() {
	ctx := context.Background()

	tests := []struct {
		name  string
		query entity.RequestQuery
		ids   []string
	}{
		{
			name:  "team pending leave",
			query: entity.RequestQuery{Kind: entity.KindLeave, Status: entity.FilterPending, EmployeeIDs: []string{"1", "3"}},
			ids:   []string{"2", "1"},
		},
		{
			name:  "team leave all statuses",
			query: entity.RequestQuery{Kind: entity.KindLeave, Status: entity.StatusAll, EmployeeIDs: []string{"1", "3"}},
			ids:   []string{"2", "1", "4", "3"},
		},
		{
			name:  "own advances",
			query: entity.RequestQuery{Kind: entity.KindAdvance, EmployeeIDs: []string{"1"}},
			ids:   []string{"5"},
		},
		{
			name:  "approved of every kind",
			query: entity.RequestQuery{Status: entity.FilterApproved, EmployeeIDs: []string{"1", "3"}},
			ids:   []string{"6", "3"},
		},
		{
			name:  "nobody",
			query: entity.RequestQuery{Status: entity.StatusAll},
			ids:   []string{},
		},
	}

	for _, tt := range tests {
		ts.Run(tt.name, func() {
			list, err := ts.repo.RequestsByQuery(ctx, tt.query)
			ts.Require().NoError(err)
			ts.Require().NotNil(list)

			ids := make([]string, 0, len(list))
			for _, r := range list {
				ids = append(ids, r.ID)
			}

			ts.Require().Equal(tt.ids, ids)
		})
	}
}

func (ts *RequestRepositoryTestSuite) TestTransitionRequest() {
	ctx := context.Background()
	at := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)
	comments := "Accordé"

	req, err := ts.repo.TransitionRequest(ctx, entity.Transition{
		RequestID: "1", To: entity.StatusApproved, Comments: &comments, DecidedBy: "2", At: at,
	})
	ts.Require().NoError(err)
	ts.Require().Equal(entity.StatusApproved, req.Status)
	ts.Require().Equal(at, req.UpdatedAt)
	ts.Require().Equal("Accordé", *req.Comments)
	ts.Require().Equal("2", *req.DecidedBy)

	_, err = ts.repo.TransitionRequest(ctx, entity.Transition{
		RequestID: "1", To: entity.StatusRejected, DecidedBy: "2", At: at.Add(time.Hour),
	})
	ts.Require().ErrorIs(err, entity.ErrNotPending)

	stored, err := ts.repo.RequestByID(ctx, "1")
	ts.Require().NoError(err)
	ts.Require().Equal(entity.StatusApproved, stored.Status)
	ts.Require().Equal(at, stored.UpdatedAt)

	_, err = ts.repo.TransitionRequest(ctx, entity.Transition{RequestID: "404", To: entity.StatusApproved})
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RequestRepositoryTestSuite) TestConcurrentTransitions() {
	ctx := context.Background()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			to := entity.StatusApproved
			if i%2 == 1 {
				to = entity.StatusRejected
			}

			_, err := ts.repo.TransitionRequest(ctx, entity.Transition{RequestID: "2", To: to, DecidedBy: "2", At: time.Now()})
			if err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	ts.Require().Equal(1, won)
}

func (ts *RequestRepositoryTestSuite) TestReadsAreCopies() {
	ctx := context.Background()

	req, err := ts.repo.RequestByID(ctx, "5")
	ts.Require().NoError(err)

	req.Status = entity.StatusApproved
	*req.Amount = req.Amount.Neg()

	stored, err := ts.repo.RequestByID(ctx, "5")
	ts.Require().NoError(err)
	ts.Require().Equal(entity.StatusPending, stored.Status)
	ts.Require().Equal("500", stored.Amount.String())
}

func (ts *RequestRepositoryTestSuite) TestSetAttachment() {
	ctx := context.Background()

	ts.Require().NoError(ts.repo.SetAttachment(ctx, "1", "requests/1/justificatif.pdf"))
	ts.Require().ErrorIs(ts.repo.SetAttachment(ctx, "3", "requests/3/x.pdf"), entity.ErrNotPending)
	ts.Require().ErrorIs(ts.repo.SetAttachment(ctx, "404", "x"), entity.ErrNotFound)

	req, err := ts.repo.RequestByID(ctx, "1")
	ts.Require().NoError(err)
	ts.Require().Equal("requests/1/justificatif.pdf", *req.AttachmentKey)
}

func TestStageRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewStageRepository()
	now := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

	live := entity.StagedDecision{ID: "s1", RequestID: "1", Action: entity.ActionApprove, StagedBy: "2", ExpiresAt: now.Add(time.Minute)}
	stale := entity.StagedDecision{ID: "s2", RequestID: "2", Action: entity.ActionReject, StagedBy: "2", ExpiresAt: now.Add(-time.Minute)}

	require.NoError(t, repo.SaveStage(ctx, live))
	require.NoError(t, repo.SaveStage(ctx, stale))

	got, err := repo.Stage(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, live, got)

	removed, err := repo.DeleteExpiredStages(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = repo.Stage(ctx, "s2")
	require.ErrorIs(t, err, entity.ErrNotFound)

	consumed, err := repo.DeleteStage(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "1", consumed.RequestID)

	_, err = repo.DeleteStage(ctx, "s1")
	require.ErrorIs(t, err, entity.ErrNotFound)
}
