package quotesvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "quimica_commerce/internal/api/base/service"
	quotemodels "quimica_commerce/internal/api/quote/models"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/logger"
	"quimica_commerce/internal/notification"
	"quimica_commerce/internal/pdf"
)

// QuoteStore is the persistence the pipeline needs, satisfied by
// QuoteService.
type QuoteStore interface {
	InsertOne(ctx context.Context, data quotemodels.Quote) (quotemodels.Quote, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (quotemodels.Quote, error)
}

// Renderer renders the quote PDF, satisfied by pdf.Renderer.
type Renderer interface {
	RenderQuote(doc pdf.QuoteDocument) ([]byte, error)
}

// PipelineConfig carries the company identity the notifications use.
type PipelineConfig struct {
	CompanyName  string // Company display name
	CompanyEmail string // Inbox that receives new quote notifications
}

// Pipeline is the quote submission flow: persist, render, notify. The two
// notification emails are the only concurrent step and are jointly awaited.
type Pipeline struct {
	store    QuoteStore
	renderer Renderer
	sender   notification.Sender
	cfg      PipelineConfig
}

// NewPipeline creates a Pipeline.
func NewPipeline(store QuoteStore, renderer Renderer, sender notification.Sender, cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		store:    store,
		renderer: renderer,
		sender:   sender,
		cfg:      cfg,
	}
}

// Submit runs the pipeline on a validated quote. A persistence failure stops
// everything. After persistence the document survives any later failure:
// render or send problems mark notificationStatus=failed and surface an
// error, they never roll the quote back.
func (p *Pipeline) Submit(ctx context.Context, quote quotemodels.Quote) (quotemodels.Quote, error) {
	created, err := p.store.InsertOne(ctx, quote)
	if err != nil {
		return quotemodels.Quote{}, err
	}

	pdfBytes, err := p.render(created)
	if err != nil {
		return p.markNotification(ctx, created, quotemodels.NotificationFailed, err)
	}

	if err := p.notify(ctx, created, pdfBytes); err != nil {
		return p.markNotification(ctx, created, quotemodels.NotificationFailed, err)
	}

	return p.markNotification(ctx, created, quotemodels.NotificationSent, nil)
}

// render maps the quote into the PDF document and renders it.
func (p *Pipeline) render(quote quotemodels.Quote) ([]byte, error) {
	return p.renderer.RenderQuote(BuildDocument(quote))
}

// BuildDocument maps a quote onto the shape the PDF renderer takes.
func BuildDocument(quote quotemodels.Quote) pdf.QuoteDocument {
	lines := make([]pdf.QuoteLine, 0, len(quote.Products))
	for _, product := range quote.Products {
		lines = append(lines, pdf.QuoteLine{
			Product:      product.Name,
			Presentation: product.Presentation,
			Quantity:     product.Quantity,
			Unit:         product.Unit,
			Frequency:    product.Frequency,
		})
	}

	clientName := quote.Client.Name
	if quote.Client.LastName != "" {
		clientName += " " + quote.Client.LastName
	}

	return pdf.QuoteDocument{
		Number:       quote.ID.Hex(),
		Date:         time.UnixMilli(quote.CreatedAt),
		ClientName:   clientName,
		ClientDNI:    quote.Client.DNI,
		ClientEmail:  quote.Client.Email,
		ClientPhone:  quote.Client.Phone,
		Company:      quote.Client.Company,
		RUC:          quote.Client.RUC,
		Lines:        lines,
		Observations: quote.Observations,
	}
}

// notify sends the company notification and the client confirmation
// concurrently and waits for both. Either failure fails the step.
func (p *Pipeline) notify(ctx context.Context, quote quotemodels.Quote, pdfBytes []byte) error {
	attachment := &notification.Attachment{
		Filename: fmt.Sprintf("cotizacion-%s.pdf", quote.ID.Hex()),
		Data:     pdfBytes,
	}

	companyMsg := notification.Message{
		To:      p.cfg.CompanyEmail,
		Subject: notification.CompanyQuoteSubject(quote.Client.Name),
		HTML: notification.CompanyQuoteBody(notification.CompanyQuoteData{
			QuoteNumber:   quote.ID.Hex(),
			ClientName:    quote.Client.Name + " " + quote.Client.LastName,
			ClientEmail:   quote.Client.Email,
			ClientPhone:   quote.Client.Phone,
			SiteName:      quote.Site.Name,
			ContactMethod: quote.ContactMethod,
			ProductCount:  len(quote.Products),
		}),
		Attachment: attachment,
	}

	clientMsg := notification.Message{
		To:      quote.Client.Email,
		Subject: notification.ClientQuoteSubject(quote.ID.Hex()),
		HTML: notification.ClientQuoteBody(notification.ClientQuoteData{
			QuoteNumber: quote.ID.Hex(),
			ClientName:  quote.Client.Name,
			CompanyName: p.cfg.CompanyName,
			SiteName:    quote.Site.Name,
		}),
		Attachment: attachment,
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, msg := range []notification.Message{companyMsg, clientMsg} {
		wg.Add(1)
		go func(i int, msg notification.Message) {
			defer wg.Done()
			errs[i] = p.sender.Send(ctx, msg)
		}(i, msg)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return common.NewError(
				common.ErrCodeUpstream,
				fmt.Sprintf("Failed to send quote notification: %s", err.Error()),
				common.StatusInternalServerError,
				err,
			)
		}
	}
	return nil
}

// markNotification records the notification outcome on the stored quote and
// forwards cause, preferring it over a bookkeeping failure.
func (p *Pipeline) markNotification(ctx context.Context, quote quotemodels.Quote, status string, cause error) (quotemodels.Quote, error) {
	updated, err := p.store.UpdateById(ctx, quote.ID, basesvc.UpdateData{
		Set: map[string]interface{}{"notificationStatus": status},
	})
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"quoteId": quote.ID.Hex(),
			"status":  status,
		}).WithError(err).Error("Failed to record quote notification status")
		if cause != nil {
			return quote, cause
		}
		return quote, err
	}
	if cause != nil {
		return updated, cause
	}
	return updated, nil
}
