package profile_test

import (
	"testing"

	appprofile "github.com/gotrabandhus/gotrabandhus/application/profile"
	"github.com/gotrabandhus/gotrabandhus/model"
)

func completeUser() *model.UserEntity {
	return &model.UserEntity{
		ID:              1,
		FirstName:       "Asha",
		LastName:        "Rao",
		Nickname:        "ash",
		Email:           "asha@x.com",
		Phone:           "123",
		Gender:          "female",
		CurrentCity:     "Pune",
		CurrentState:    "MH",
		CurrentCountry:  "IN",
		Gotra:           "G1",
		Pravara:         "P1",
		Community:       "C1",
		PrimaryLanguage: "Marathi",
	}
}

func TestIsComplete(t *testing.T) {
	if !appprofile.IsComplete(completeUser()) {
		t.Fatal("IsComplete() = false for a user with every required field set")
	}

	if appprofile.IsComplete(nil) {
		t.Fatal("IsComplete(nil) = true")
	}

	// A fresh registration carries only name/nickname/email/phone
	fresh := &model.UserEntity{
		FirstName: "Asha",
		LastName:  "Rao",
		Nickname:  "ash",
		Email:     "asha@x.com",
		Phone:     "123",
	}
	if appprofile.IsComplete(fresh) {
		t.Fatal("IsComplete() = true for a freshly registered user")
	}

	// Optional fields alone never make a profile complete
	fresh.Bio = "hello"
	fresh.Occupation = "engineer"
	if appprofile.IsComplete(fresh) {
		t.Fatal("IsComplete() = true with only optional fields added")
	}
}

// Clearing any single required field must flip the result to false.
func TestIsComplete_EachRequiredField(t *testing.T) {
	clearField := map[string]func(u *model.UserEntity){
		"firstName":       func(u *model.UserEntity) { u.FirstName = "" },
		"lastName":        func(u *model.UserEntity) { u.LastName = "" },
		"nickname":        func(u *model.UserEntity) { u.Nickname = "" },
		"email":           func(u *model.UserEntity) { u.Email = "" },
		"phone":           func(u *model.UserEntity) { u.Phone = "" },
		"gender":          func(u *model.UserEntity) { u.Gender = "" },
		"currentCity":     func(u *model.UserEntity) { u.CurrentCity = "" },
		"currentState":    func(u *model.UserEntity) { u.CurrentState = "" },
		"currentCountry":  func(u *model.UserEntity) { u.CurrentCountry = "" },
		"gotra":           func(u *model.UserEntity) { u.Gotra = "" },
		"pravara":         func(u *model.UserEntity) { u.Pravara = "" },
		"community":       func(u *model.UserEntity) { u.Community = "" },
		"primaryLanguage": func(u *model.UserEntity) { u.PrimaryLanguage = "" },
	}

	for field, clear := range clearField {
		field, clear := field, clear
		t.Run(field, func(t *testing.T) {
			u := completeUser()
			clear(u)
			if appprofile.IsComplete(u) {
				t.Fatalf("IsComplete() = true with %s empty", field)
			}
		})
	}
}
