package repository_test

import (
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/repository"
)

func TestMessageRepository_AppendFillsGeneratedFields(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)

	require.NoError(t, insertTestConversation(db, "conv-1", models.ConversationActive, models.AuthorityNone, 0))

	first := &models.Message{
		ConversationID: "conv-1",
		Direction:      models.DirectionOutbound,
		Sender:         models.SenderSystem,
		Body:           "Sorry we missed your call! How can we help?",
		DeliveryStatus: models.DeliveryPending,
		SentAt:         time.Now(),
	}
	require.NoError(t, repo.Append(first))
	assert.NotZero(t, first.ID)
	assert.NotZero(t, first.Seq)

	second := &models.Message{
		ConversationID: "conv-1",
		Direction:      models.DirectionInbound,
		Sender:         models.SenderCustomer,
		Body:           "My water heater is leaking",
		DeliveryStatus: models.DeliverySent,
		SentAt:         time.Now(),
	}
	require.NoError(t, repo.Append(second))
	assert.Greater(t, second.Seq, first.Seq)
}

func TestMessageRepository_ListByConversationOrdering(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)

	require.NoError(t, insertTestConversation(db, "conv-1", models.ConversationActive, models.AuthorityNone, 0))
	require.NoError(t, insertTestConversation(db, "conv-2", models.ConversationActive, models.AuthorityNone, 0))

	now := time.Now().Truncate(time.Millisecond)

	require.NoError(t, insertTestMessage(db, "conv-1", models.DirectionOutbound, models.SenderSystem, "greeting", now))
	require.NoError(t, insertTestMessage(db, "conv-1", models.DirectionInbound, models.SenderCustomer, "reply", now.Add(time.Minute)))
	require.NoError(t, insertTestMessage(db, "conv-1", models.DirectionOutbound, models.SenderAutomation, "tie first", now.Add(2*time.Minute)))
	require.NoError(t, insertTestMessage(db, "conv-1", models.DirectionOutbound, models.SenderAutomation, "tie second", now.Add(2*time.Minute)))
	require.NoError(t, insertTestMessage(db, "conv-2", models.DirectionOutbound, models.SenderSystem, "other thread", now))

	messages, err := repo.ListByConversation("conv-1")
	require.NoError(t, err)
	require.Len(t, messages, 4)

	assert.Equal(t, "greeting", messages[0].Body)
	assert.Equal(t, "reply", messages[1].Body)

	// Same sent_at resolves by insertion order.
	assert.Equal(t, "tie first", messages[2].Body)
	assert.Equal(t, "tie second", messages[3].Body)
	assert.Less(t, messages[2].Seq, messages[3].Seq)

	empty, err := repo.ListByConversation("conv-none")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMessageRepository_UpdateDelivery(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)

	require.NoError(t, insertTestConversation(db, "conv-1", models.ConversationActive, models.AuthorityNone, 0))

	msg := &models.Message{
		ConversationID: "conv-1",
		Direction:      models.DirectionOutbound,
		Sender:         models.SenderAutomation,
		Body:           "We can come out tomorrow morning.",
		DeliveryStatus: models.DeliveryPending,
		SentAt:         time.Now(),
	}
	require.NoError(t, repo.Append(msg))

	require.NoError(t, repo.UpdateDelivery(msg.ID, models.DeliverySent, ptr("pm-123")))

	var got models.Message
	require.NoError(t, db.Get(&got, "SELECT id, conversation_id, direction, sender, body, provider_message_id, delivery_status, sent_at, seq, created_at FROM messages WHERE id = $1", msg.ID))
	assert.Equal(t, models.DeliverySent, got.DeliveryStatus)
	require.True(t, got.ProviderMessageID.Valid)
	assert.Equal(t, "pm-123", got.ProviderMessageID.String)

	require.NoError(t, repo.UpdateDelivery(msg.ID, models.DeliveryFailed, nil))

	require.NoError(t, db.Get(&got, "SELECT id, delivery_status, provider_message_id FROM messages WHERE id = $1", msg.ID))
	assert.Equal(t, models.DeliveryFailed, got.DeliveryStatus)
	assert.False(t, got.ProviderMessageID.Valid)
}
