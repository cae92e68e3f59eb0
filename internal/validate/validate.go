// Package validate checks form input before any request is sent.
//
// Forms declare their rules as struct tags and are checked with
// go-playground/validator. Each failing field is reported with the message
// the web client shows for it; field validators return "" when the value is
// acceptable.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "eventhub/cli/internal/errors"
)

var reName = regexp.MustCompile(`^[a-zA-Z\s]+$`)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// messages maps field -> failing tag -> user-facing text.
var messages = map[string]map[string]string{
	"name": {
		"required":       "Full name is required",
		"min":            "Name must be at least 2 characters",
		"letters_spaces": "Name can only contain letters and spaces",
	},
	"email": {
		"required": "Email address is required",
		"email":    "Enter a valid email",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	"photoURL":    {"required": "URL is required"},
	"title":       {"required": "Title is required."},
	"description": {"required": "Description is required."},
	"date":        {"required": "Date is required."},
	"time":        {"required": "Time is required."},
	"location":    {"required": "Location is required."},
	"creatorName": {"required": "Creator name is required."},
}

func validate() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = engine.RegisterValidation("letters_spaces", func(fl validator.FieldLevel) bool {
			return reName.MatchString(fl.Field().String())
		})
	})
	return engine
}

// Errors maps field names to messages. Only failing fields are present.
type Errors map[string]string

// OK reports whether no field failed.
func (e Errors) OK() bool { return len(e) == 0 }

// Fields returns the failing field names in stable order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Err returns nil when e is empty, else a ValidationFailed error listing the messages.
func (e Errors) Err() error {
	if e.OK() {
		return nil
	}
	msgs := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		msgs = append(msgs, f+": "+e[f])
	}
	return apperrors.New(apperrors.ValidationFailed, strings.Join(msgs, "; "))
}

// check runs the struct rules of form and collects the first failure per field.
func check(form any) Errors {
	e := Errors{}
	err := validate().Struct(form)
	if err == nil {
		return e
	}
	var fails validator.ValidationErrors
	if !errors.As(err, &fails) {
		e["form"] = err.Error()
		return e
	}
	for _, fe := range fails {
		if _, seen := e[fe.Field()]; seen {
			continue
		}
		msg := messages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = fe.Error()
		}
		e[fe.Field()] = msg
	}
	return e
}

// SignupForm is the input of the signup command.
type SignupForm struct {
	Name     string `json:"name" validate:"required,min=2,letters_spaces"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	PhotoURL string `json:"photoURL" validate:"required"`
}

// Signup validates every signup field. Surrounding blanks are ignored except
// in the password.
func Signup(f SignupForm) Errors {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.PhotoURL = strings.TrimSpace(f.PhotoURL)
	return check(f)
}

// LoginForm is the input of the login command.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login validates email and password.
func Login(email, password string) Errors {
	return check(LoginForm{Email: strings.TrimSpace(email), Password: password})
}

// Name returns the message for an unacceptable full name, or "".
func Name(name string) string { return Signup(SignupForm{Name: name})["name"] }

// Email returns the message for an unacceptable email, or "".
func Email(email string) string { return Login(email, "")["email"] }

// Password returns the message for an unacceptable password, or "".
func Password(password string) string { return Login("", password)["password"] }

// PhotoURL returns the message for a missing photo URL, or "".
func PhotoURL(u string) string { return Signup(SignupForm{PhotoURL: u})["photoURL"] }

// EventForm is the input of the create command. Every field is required.
type EventForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	CreatorName string `json:"creatorName" validate:"required"`
}

// Event requires every field to be non-blank.
func Event(f EventForm) Errors {
	for _, p := range []*string{&f.Title, &f.Description, &f.Date, &f.Time, &f.Location, &f.CreatorName} {
		*p = strings.TrimSpace(*p)
	}
	return check(f)
}
