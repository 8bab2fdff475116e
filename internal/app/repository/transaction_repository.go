package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(txn *model.Transaction) error
	CreateWithMember(txn *model.Transaction, member *model.Member) error
	CreateWithMemberUpdate(txn *model.Transaction, apply func(member *model.Member)) error
	FindByID(id uint) (*model.Transaction, error)
	FindAll() ([]model.Transaction, error)
	FindByTrainerID(trainerID uint) ([]model.Transaction, error)
	FindByTrainerIDs(trainerIDs []uint) ([]model.Transaction, error)
	FindByMonth(monthKey string) ([]model.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(txn *model.Transaction) error {
	logger.Debug("Creating transaction in database", map[string]interface{}{
		"trainer_id": txn.TrainerID,
		"type":       txn.Type,
		"amount":     txn.Amount,
	})

	if err := r.db.Create(txn).Error; err != nil {
		logger.Error("Failed to create transaction in database", err, map[string]interface{}{
			"trainer_id": txn.TrainerID,
			"type":       txn.Type,
		})
		return err
	}
	return nil
}

// CreateWithMember 신규 등록: 매출 기록과 신규 회원 생성을 한 트랜잭션으로 묶는다.
func (r *transactionRepository) CreateWithMember(txn *model.Transaction, member *model.Member) error {
	logger.Debug("Creating transaction with new member in database", map[string]interface{}{
		"trainer_id":  txn.TrainerID,
		"member_name": member.Name,
		"amount":      txn.Amount,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		txn.MemberID = &member.ID
		txn.MemberName = member.Name
		return tx.Create(txn).Error
	})
	if err != nil {
		logger.Error("Failed to create transaction with new member in database", err, map[string]interface{}{
			"trainer_id":  txn.TrainerID,
			"member_name": member.Name,
		})
		return err
	}
	return nil
}

// CreateWithMemberUpdate 재등록: 매출 기록과 기존 회원 갱신을 한 트랜잭션으로 묶는다.
// apply는 잠금 조회된 회원에 세션/금액 증가를 적용한다.
func (r *transactionRepository) CreateWithMemberUpdate(txn *model.Transaction, apply func(member *model.Member)) error {
	logger.Debug("Creating transaction with member update in database", map[string]interface{}{
		"trainer_id": txn.TrainerID,
		"member_id":  txn.MemberID,
		"amount":     txn.Amount,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var member model.Member
		if err := tx.First(&member, *txn.MemberID).Error; err != nil {
			return err
		}
		apply(&member)
		if err := tx.Save(&member).Error; err != nil {
			return err
		}
		txn.MemberName = member.Name
		return tx.Create(txn).Error
	})
	if err != nil {
		logger.Error("Failed to create transaction with member update in database", err, map[string]interface{}{
			"trainer_id": txn.TrainerID,
			"member_id":  txn.MemberID,
		})
		return err
	}
	return nil
}

func (r *transactionRepository) FindByID(id uint) (*model.Transaction, error) {
	var txn model.Transaction
	if err := r.db.First(&txn, id).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) FindAll() ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.db.Order("date DESC, id DESC").Find(&txns).Error; err != nil {
		logger.Error("Failed to find all transactions in database", err, nil)
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) FindByTrainerID(trainerID uint) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.db.Where("trainer_id = ?", trainerID).
		Order("date DESC, id DESC").Find(&txns).Error; err != nil {
		logger.Error("Failed to find transactions by trainer ID in database", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) FindByTrainerIDs(trainerIDs []uint) ([]model.Transaction, error) {
	if len(trainerIDs) == 0 {
		return []model.Transaction{}, nil
	}

	var txns []model.Transaction
	if err := r.db.Where("trainer_id IN ?", trainerIDs).
		Order("date DESC, id DESC").Find(&txns).Error; err != nil {
		logger.Error("Failed to find transactions by trainer IDs in database", err, map[string]interface{}{
			"trainer_count": len(trainerIDs),
		})
		return nil, err
	}
	return txns, nil
}

// FindByMonth 월 키("YYYY-MM") 접두사로 조회한다. 날짜가 문자열 컬럼이므로
// 접두사 일치가 곧 해당 월 소속이다.
func (r *transactionRepository) FindByMonth(monthKey string) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.db.Where("date LIKE ?", monthKey+"%").
		Order("date DESC, id DESC").Find(&txns).Error; err != nil {
		logger.Error("Failed to find transactions by month in database", err, map[string]interface{}{
			"month": monthKey,
		})
		return nil, err
	}
	return txns, nil
}
