package profile

import "github.com/gotrabandhus/gotrabandhus/model"

// IsComplete is the single source of truth for "this profile is usable
// beyond onboarding". It is recomputed after every create and update; the
// stored profileCompleted flag is never taken from client input.
//
// A field counts as filled only when it is a non-empty string; no trimming
// is applied.
func IsComplete(u *model.UserEntity) bool {
	if u == nil {
		return false
	}

	required := []string{
		u.FirstName,
		u.LastName,
		u.Nickname,
		u.Email,
		u.Phone,
		u.Gender,
		u.CurrentCity,
		u.CurrentState,
		u.CurrentCountry,
		u.Gotra,
		u.Pravara,
		u.Community,
		u.PrimaryLanguage,
	}

	for _, v := range required {
		if v == "" {
			return false
		}
	}
	return true
}
