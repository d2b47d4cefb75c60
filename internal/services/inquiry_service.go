package services

import (
	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

type InquiryService interface {
	Create(req *dto.CreateInquiryRequest) (*models.Inquiry, error)
	List(query *dto.ListInquiriesQuery, page, limit int) ([]models.Inquiry, int64, error)
	Get(id string) (*models.Inquiry, error)
	Update(id string, req *dto.UpdateInquiryRequest) (*models.Inquiry, error)
	Delete(id string) error
}

type InquiryServiceImpl struct {
	inquiryRepo repositories.InquiryRepository
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository) InquiryService {
	return &InquiryServiceImpl{inquiryRepo: inquiryRepo}
}

func (s *InquiryServiceImpl) Create(req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	inquiryType := req.Type
	if inquiryType == "" {
		inquiryType = "general"
	}

	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Type:    inquiryType,
	}

	if err := s.inquiryRepo.Create(inquiry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return inquiry, nil
}

func (s *InquiryServiceImpl) List(query *dto.ListInquiriesQuery, page, limit int) ([]models.Inquiry, int64, error) {
	inquiries, total, err := s.inquiryRepo.FindWithFilter(repositories.InquiryFilter{
		Type:     query.Type,
		Status:   models.InquiryStatus(query.Status),
		Priority: models.InquiryPriority(query.Priority),
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return inquiries, total, nil
}

func (s *InquiryServiceImpl) Get(id string) (*models.Inquiry, error) {
	return s.find(id)
}

func (s *InquiryServiceImpl) Update(id string, req *dto.UpdateInquiryRequest) (*models.Inquiry, error) {
	inquiry, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		newStatus := models.InquiryStatus(*req.Status)
		// Stamp the first transition into resolved.
		if newStatus == models.InquiryStatusResolved && inquiry.Status != models.InquiryStatusResolved {
			now := timeNow()
			inquiry.ResolvedAt = &now
		}
		inquiry.Status = newStatus
	}
	if req.Priority != nil {
		inquiry.Priority = models.InquiryPriority(*req.Priority)
	}
	if req.AdminNotes != nil {
		inquiry.AdminNotes = *req.AdminNotes
	}

	if err := s.inquiryRepo.Update(inquiry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return inquiry, nil
}

func (s *InquiryServiceImpl) Delete(id string) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if err := s.inquiryRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InquiryServiceImpl) find(id string) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInquiryNotFound) {
			return nil, apperrors.NotFound("Inquiry")
		}
		return nil, apperrors.InternalError(err)
	}
	return inquiry, nil
}
