package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/tastebite/tastebite-api/models"
)

// RatingService upserts ratings and keeps each food item's derived
// average_rating/rating_count fields consistent with the committed set of
// ratings. Writes for the same food item are serialized with a per-item
// mutex so concurrent submissions cannot lose an aggregate update.
type RatingService struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewRatingService creates a rating service
func NewRatingService() *RatingService {
	return &RatingService{locks: make(map[uint]*sync.Mutex)}
}

var ratingServiceInstance = NewRatingService()

// GetRatingService returns the shared rating service instance
func GetRatingService() *RatingService {
	return ratingServiceInstance
}

// SubmitRatingInput carries one rating submission
type SubmitRatingInput struct {
	UserID     uint
	FoodItemID uint
	Rating     int
	Comment    string
}

func (s *RatingService) itemLock(foodItemID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[foodItemID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[foodItemID] = l
	}
	return l
}

// Submit upserts a rating keyed by (user, food item) and recomputes the
// target item's aggregate fields from all committed ratings, all inside one
// transaction.
func (s *RatingService) Submit(db *gorm.DB, in SubmitRatingInput) (*models.Rating, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, NewError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	var user models.User
	if err := db.First(&user, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	var food models.FoodItem
	if err := db.First(&food, in.FoodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError("FOOD_ITEM_NOT_FOUND", "Food item not found")
		}
		return nil, err
	}

	lock := s.itemLock(in.FoodItemID)
	lock.Lock()
	defer lock.Unlock()

	var rating models.Rating
	err := db.Transaction(func(tx *gorm.DB) error {
		// Upsert: overwrite an existing rating for this pair if present
		err := tx.Where("user_id = ? AND food_item_id = ?", in.UserID, in.FoodItemID).First(&rating).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		rating.UserID = in.UserID
		rating.FoodItemID = in.FoodItemID
		rating.Rating = in.Rating
		rating.Comment = in.Comment
		if err := tx.Save(&rating).Error; err != nil {
			return err
		}

		return recomputeItemAggregate(tx, in.FoodItemID)
	})
	if err != nil {
		return nil, err
	}

	return &rating, nil
}

// recomputeItemAggregate persists the full-scan aggregate over all ratings
// for the item: mean score (0 when none exist) and count.
func recomputeItemAggregate(tx *gorm.DB, foodItemID uint) error {
	var result struct {
		Avg   *float64
		Count int64
	}
	err := tx.Model(&models.Rating{}).
		Select("AVG(rating) as avg, COUNT(*) as count").
		Where("food_item_id = ?", foodItemID).
		Scan(&result).Error
	if err != nil {
		return err
	}

	avg := 0.0
	if result.Avg != nil {
		avg = *result.Avg
	}

	return tx.Model(&models.FoodItem{}).
		Where("id = ?", foodItemID).
		Updates(map[string]interface{}{
			"average_rating": avg,
			"rating_count":   result.Count,
		}).Error
}
