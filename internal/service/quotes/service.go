package quotes

import (
	"context"
	"errors"
	"fmt"

	quoteRepo "github.com/m04kA/GLS-QuoteService/internal/infra/storage/quote"
	"github.com/m04kA/GLS-QuoteService/internal/service/quotes/models"
)

// Service сервис чтения заявок (просмотр списка и отдельной заявки)
type Service struct {
	quoteRepo QuoteRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(quoteRepo QuoteRepository, logger Logger) *Service {
	return &Service{
		quoteRepo: quoteRepo,
		logger:    logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.QuoteResponse, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			s.logger.Warn("GetByID: quote request id=%d not found", id)
			return nil, ErrQuoteNotFound
		}
		s.logger.Error("GetByID: repository error for quote request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuote(quote), nil
}

// List получает все заявки в порядке создания
func (s *Service) List(ctx context.Context) ([]*models.QuoteResponse, error) {
	quotes, err := s.quoteRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d quote requests", len(quotes))
	return models.FromDomainQuoteList(quotes), nil
}
