package pantry

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
	"FreshPlan-Backend/internal/utils/mailing"
	"FreshPlan-Backend/internal/utils/storage"
	"FreshPlan-Backend/pkg/gemini"
	"FreshPlan-Backend/pkg/state"
	"FreshPlan-Backend/pkg/user"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	PantryService interface {
		GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		AddPantryItems(ctx context.Context, req domain.AddPantryItemsRequest, userID string) ([]domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, itemID string, req domain.UpdatePantryItemRequest, userID string) error
		RemovePantryItem(ctx context.Context, itemID string, userID string) error
		ScanPantry(ctx context.Context, req domain.ScanPantryRequest, userID string) (domain.ScanPantryResponse, error)
		GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error)
		SendExpiryDigest(ctx context.Context, userID string) error

		// LoadPantry exposes the raw collection to the planner, recipe and
		// grocery services.
		LoadPantry(ctx context.Context, userID string) ([]entities.PantryItem, error)
	}

	pantryService struct {
		store          state.Store
		gemini         gemini.GeminiClient
		s3             storage.AwsS3
		userRepository user.UserRepository
	}
)

func NewPantryService(store state.Store, geminiClient gemini.GeminiClient, s3 storage.AwsS3, userRepository user.UserRepository) PantryService {
	return &pantryService{
		store:          store,
		gemini:         geminiClient,
		s3:             s3,
		userRepository: userRepository,
	}
}

func (s *pantryService) LoadPantry(ctx context.Context, userID string) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	found, err := s.store.Load(ctx, userID, entities.SlotPantryItems, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		items = SeedPantry()
		if err := s.store.Save(ctx, userID, entities.SlotPantryItems, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *pantryService) savePantry(ctx context.Context, userID string, items []entities.PantryItem) error {
	return s.store.Save(ctx, userID, entities.SlotPantryItems, items)
}

func toPantryItemResponse(item entities.PantryItem, today time.Time) domain.PantryItemResponse {
	info := EvaluateExpiry(item.ExpiryDate, item.Category, today)
	return domain.PantryItemResponse{
		PantryItem:      item,
		DaysUntilExpiry: info.Days,
		ExpiryStatus:    info.Status,
		SafeUntil:       info.SafeUntil,
		SafeDaysLeft:    info.SafeDaysLeft,
	}
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	responses := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toPantryItemResponse(item, today))
	}
	return responses, nil
}

func newItemFromRequest(req domain.AddPantryItemRequest) entities.PantryItem {
	return entities.PantryItem{
		ID:         fmt.Sprintf("item-%s", uuid.New().String()[:8]),
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: req.ExpiryDate,
		Macros:     req.Macros,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item := newItemFromRequest(req)
	if err := s.savePantry(ctx, userID, AddItem(items, item)); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return toPantryItemResponse(item, time.Now()), nil
}

func (s *pantryService) AddPantryItems(ctx context.Context, req domain.AddPantryItemsRequest, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return nil, err
	}

	incoming := make([]entities.PantryItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		incoming = append(incoming, newItemFromRequest(itemReq))
	}

	if err := s.savePantry(ctx, userID, AddItems(items, incoming)); err != nil {
		return nil, err
	}

	today := time.Now()
	responses := make([]domain.PantryItemResponse, 0, len(incoming))
	for _, item := range incoming {
		responses = append(responses, toPantryItemResponse(item, today))
	}
	return responses, nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, itemID string, req domain.UpdatePantryItemRequest, userID string) error {
	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return err
	}

	next, updated := UpdateItem(items, itemID, req)
	if !updated {
		return domain.ErrPantryItemNotFound
	}
	return s.savePantry(ctx, userID, next)
}

func (s *pantryService) RemovePantryItem(ctx context.Context, itemID string, userID string) error {
	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return err
	}

	next, removed := RemoveItem(items, itemID)
	if !removed {
		return domain.ErrPantryItemNotFound
	}
	return s.savePantry(ctx, userID, next)
}

func (s *pantryService) ScanPantry(ctx context.Context, req domain.ScanPantryRequest, userID string) (domain.ScanPantryResponse, error) {
	file, err := req.Image.Open()
	if err != nil {
		return domain.ScanPantryResponse{}, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.ScanPantryResponse{}, err
	}

	fileName := fmt.Sprintf("pantry-scan-%s", uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "pantry-scans", storage.AllowImage...)
	if err != nil {
		return domain.ScanPantryResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	mimeType := req.Image.Header.Get("Content-Type")
	base64Image := base64.StdEncoding.EncodeToString(fileData)

	identified, err := s.gemini.IdentifyPantryItems(ctx, base64Image, mimeType)
	if err != nil {
		return domain.ScanPantryResponse{}, err
	}
	if len(identified) == 0 {
		return domain.ScanPantryResponse{ImageURL: imageURL}, domain.ErrScanNoItems
	}

	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return domain.ScanPantryResponse{}, err
	}

	merged := MergeItems(items, identified)
	if err := s.savePantry(ctx, userID, merged); err != nil {
		return domain.ScanPantryResponse{}, err
	}

	return domain.ScanPantryResponse{
		ImageURL:   imageURL,
		Identified: identified,
		AddedCount: len(merged) - len(items),
	}, nil
}

func (s *pantryService) GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error) {
	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	stats := ComputeStats(items, time.Now())
	return domain.PantryStatsResponse{
		TotalItems:        stats.TotalItems,
		ActiveItems:       stats.ActiveItems,
		ExpiredItems:      stats.ExpiredItems,
		ItemsExpiringSoon: stats.ItemsExpiringSoon,
		EstimatedValue:    stats.EstimatedValue,
	}, nil
}

func (s *pantryService) SendExpiryDigest(ctx context.Context, userID string) error {
	items, err := s.LoadPantry(ctx, userID)
	if err != nil {
		return err
	}

	today := time.Now()
	var expiring []domain.PantryItemResponse
	for _, item := range items {
		res := toPantryItemResponse(item, today)
		if res.ExpiryStatus == StatusExpiring || res.ExpiryStatus == StatusExpired {
			expiring = append(expiring, res)
		}
	}
	if len(expiring) == 0 {
		return domain.ErrNothingExpiring
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	var rows strings.Builder
	for _, item := range expiring {
		days := "unknown"
		if item.DaysUntilExpiry != nil {
			days = fmt.Sprintf("%d", *item.DaysUntilExpiry)
		}
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%g %s</td><td>%s</td><td>%s</td></tr>",
			item.Name, item.Quantity, item.Unit, item.ExpiryStatus, days,
		))
	}

	body := fmt.Sprintf(
		"<h3>Hi %s,</h3>"+
			"<p>These pantry items are close to expiry or already expired:</p>"+
			"<table border=\"1\" cellpadding=\"6\">"+
			"<tr><th>Item</th><th>Quantity</th><th>Status</th><th>Days left</th></tr>%s</table>"+
			"<p>Plan a meal around them before they go to waste.</p>",
		u.Name, rows.String(),
	)

	return mailing.SendMail(u.Email, "Your pantry expiry digest", body)
}
