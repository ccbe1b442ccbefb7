package quotesvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "quimica_commerce/internal/api/base/service"
	quotemodels "quimica_commerce/internal/api/quote/models"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/notification"
	"quimica_commerce/internal/pdf"
	"quimica_commerce/internal/sites"
)

// stubStore records the pipeline's persistence calls.
type stubStore struct {
	insertErr error
	updateErr error

	inserted []quotemodels.Quote
	updates  []basesvc.UpdateData
}

func (s *stubStore) InsertOne(ctx context.Context, data quotemodels.Quote) (quotemodels.Quote, error) {
	if s.insertErr != nil {
		return quotemodels.Quote{}, s.insertErr
	}
	data.ID = primitive.NewObjectID()
	data.CreatedAt = time.Now().UnixMilli()
	data.UpdatedAt = data.CreatedAt
	s.inserted = append(s.inserted, data)
	return data, nil
}

func (s *stubStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (quotemodels.Quote, error) {
	if s.updateErr != nil {
		return quotemodels.Quote{}, s.updateErr
	}
	update, ok := data.(basesvc.UpdateData)
	if !ok {
		return quotemodels.Quote{}, errors.New("unexpected update payload")
	}
	s.updates = append(s.updates, update)

	updated := s.inserted[len(s.inserted)-1]
	if status, ok := update.Set["notificationStatus"].(string); ok {
		updated.NotificationStatus = status
	}
	return updated, nil
}

// stubRenderer returns fixed bytes or fails.
type stubRenderer struct {
	err  error
	docs []pdf.QuoteDocument
}

func (r *stubRenderer) RenderQuote(doc pdf.QuoteDocument) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.docs = append(r.docs, doc)
	return []byte("%PDF-stub"), nil
}

// stubSender counts sends and can fail selectively by recipient.
type stubSender struct {
	mu      sync.Mutex
	failFor string
	sent    []notificationMessage
}

type notificationMessage struct {
	To         string
	Subject    string
	Attachment string
}

func (s *stubSender) Send(ctx context.Context, msg notification.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor != "" && msg.To == s.failFor {
		return errors.New("smtp connection refused")
	}
	recorded := notificationMessage{To: msg.To, Subject: msg.Subject}
	if msg.Attachment != nil {
		recorded.Attachment = msg.Attachment.Filename
	}
	s.sent = append(s.sent, recorded)
	return nil
}

func sampleQuote() quotemodels.Quote {
	return quotemodels.Quote{
		Site: quotemodels.QuoteSite{
			ID:      sites.Site1,
			Name:    "Química Lima",
			Address: "Av. Argentina 2020",
		},
		Client: quotemodels.QuoteClient{
			Name:     "María",
			LastName: "García",
			DNI:      "45678912",
			Email:    "maria@example.com",
			Phone:    "+51 999 888 777",
		},
		Products: []quotemodels.QuoteProduct{
			{Name: "Soda Cáustica", Presentation: "Saco 25kg", Quantity: 10, Unit: "kg", Frequency: "mensual"},
		},
		ContactMethod:      quotemodels.ContactEmail,
		Status:             quotemodels.StatusPending,
		NotificationStatus: quotemodels.NotificationPending,
	}
}

func newTestPipeline(store *stubStore, renderer *stubRenderer, sender *stubSender) *Pipeline {
	return NewPipeline(store, renderer, sender, PipelineConfig{
		CompanyName:  "Química Industrial Perú",
		CompanyEmail: "ventas@quimicaindustrial.pe",
	})
}

func TestPipelineSubmit_Success(t *testing.T) {
	store := &stubStore{}
	renderer := &stubRenderer{}
	sender := &stubSender{}

	result, err := newTestPipeline(store, renderer, sender).Submit(context.Background(), sampleQuote())
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.False(t, result.ID.IsZero())
	assert.Equal(t, quotemodels.NotificationSent, result.NotificationStatus)

	// Exactly one company notification and one client confirmation
	require.Len(t, sender.sent, 2)
	recipients := []string{sender.sent[0].To, sender.sent[1].To}
	assert.Contains(t, recipients, "ventas@quimicaindustrial.pe")
	assert.Contains(t, recipients, "maria@example.com")
	for _, msg := range sender.sent {
		assert.Equal(t, "cotizacion-"+result.ID.Hex()+".pdf", msg.Attachment)
	}

	require.Len(t, store.updates, 1)
	assert.Equal(t, quotemodels.NotificationSent, store.updates[0].Set["notificationStatus"])
}

func TestPipelineSubmit_InsertFailureStopsEverything(t *testing.T) {
	store := &stubStore{insertErr: errors.New("write concern timeout")}
	renderer := &stubRenderer{}
	sender := &stubSender{}

	_, err := newTestPipeline(store, renderer, sender).Submit(context.Background(), sampleQuote())
	require.Error(t, err)

	assert.Empty(t, renderer.docs)
	assert.Empty(t, sender.sent)
	assert.Empty(t, store.updates)
}

func TestPipelineSubmit_RenderFailureMarksFailed(t *testing.T) {
	store := &stubStore{}
	renderer := &stubRenderer{err: errors.New("font not found")}
	sender := &stubSender{}

	result, err := newTestPipeline(store, renderer, sender).Submit(context.Background(), sampleQuote())
	require.Error(t, err)

	// The quote survives the failure with the outcome recorded
	require.Len(t, store.inserted, 1)
	assert.Equal(t, quotemodels.NotificationFailed, result.NotificationStatus)
	assert.Empty(t, sender.sent)
}

func TestPipelineSubmit_SendFailureMarksFailed(t *testing.T) {
	store := &stubStore{}
	renderer := &stubRenderer{}
	sender := &stubSender{failFor: "maria@example.com"}

	result, err := newTestPipeline(store, renderer, sender).Submit(context.Background(), sampleQuote())
	require.Error(t, err)

	appErr, ok := err.(*common.Error)
	require.True(t, ok)
	assert.Equal(t, common.ErrCodeUpstream, appErr.Code)

	assert.Equal(t, quotemodels.NotificationFailed, result.NotificationStatus)
	require.Len(t, store.updates, 1)
	assert.Equal(t, quotemodels.NotificationFailed, store.updates[0].Set["notificationStatus"])
}

func TestPipelineSubmit_BookkeepingFailureKeepsCause(t *testing.T) {
	store := &stubStore{updateErr: errors.New("connection reset")}
	renderer := &stubRenderer{err: errors.New("render blew up")}
	sender := &stubSender{}

	_, err := newTestPipeline(store, renderer, sender).Submit(context.Background(), sampleQuote())
	require.Error(t, err)
	// The render failure surfaces, not the status bookkeeping one
	assert.Contains(t, err.Error(), "render blew up")
}

func TestBuildDocument(t *testing.T) {
	quote := sampleQuote()
	quote.ID = primitive.NewObjectID()
	quote.CreatedAt = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC).UnixMilli()
	quote.Observations = "Entrega en planta"

	doc := BuildDocument(quote)
	assert.Equal(t, quote.ID.Hex(), doc.Number)
	assert.Equal(t, "María García", doc.ClientName)
	assert.Equal(t, "45678912", doc.ClientDNI)
	assert.Equal(t, "maria@example.com", doc.ClientEmail)
	assert.Equal(t, "Entrega en planta", doc.Observations)
	assert.Equal(t, time.UnixMilli(quote.CreatedAt), doc.Date)

	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "Soda Cáustica", doc.Lines[0].Product)
	assert.Equal(t, 10, doc.Lines[0].Quantity)
	assert.Equal(t, "kg", doc.Lines[0].Unit)

	// LastName is optional in the rendered client name
	quote.Client.LastName = ""
	doc = BuildDocument(quote)
	assert.Equal(t, "María", doc.ClientName)
}
