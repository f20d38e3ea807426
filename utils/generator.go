package utils

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/mzohaibtariq/fyp_portal/models"
)

const referenceSuffixLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueProposalReference produces a reference code like FYP-7KD2M9QX
// that no existing proposal carries.
func GenerateUniqueProposalReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceSuffixLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		reference := "FYP-" + string(b)

		var proposal models.Proposal
		err := tx.Where("reference = ?", reference).First(&proposal).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return reference, nil
			}
			return "", err
		}
	}
}
