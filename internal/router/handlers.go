package router

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
)

// minPasswordRunes is the minimum registration password length.
const minPasswordRunes = 6

// SubmitRegister handles the registration form. Uniqueness of the email is
// checked here, not in the repo — this handler is the single writer of new
// users, so the check-then-append pair cannot race.
//
// On a validation failure the message is shown field-locally, nothing is
// persisted, and no navigation happens; the returned error wraps
// domain.ErrValidation for the caller's logs only.
func (r *Router) SubmitRegister(ctx context.Context) error {
	fields, err := r.forms.ReadForm(FormRegister)
	if err != nil {
		return fmt.Errorf("router.SubmitRegister: %w", err)
	}
	name, email, password := fields[FieldName], fields[FieldEmail], fields[FieldPassword]

	if utf8.RuneCountInString(password) < minPasswordRunes {
		return r.reject(ViewRegister, FieldPassword, MsgPasswordTooShort)
	}

	if _, err := r.users.FindByEmail(ctx, email); err == nil {
		return r.reject(ViewRegister, FieldEmail, MsgEmailTaken)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("router.SubmitRegister: %w", err)
	}

	user := domain.User{Name: name, Email: email, Password: password}
	if err := r.users.Add(ctx, user); err != nil {
		return fmt.Errorf("router.SubmitRegister: %w", err)
	}

	r.log.InfoContext(ctx, "user registered", "email", email)
	r.renderer.Notify(MsgRegistered)
	return r.Navigate(ctx, string(KeyLogin))
}

// SubmitLogin handles the login form: the stored password must equal the
// submitted one exactly. A wrong email and a wrong password produce the same
// message, so the form does not reveal which emails are registered.
func (r *Router) SubmitLogin(ctx context.Context) error {
	fields, err := r.forms.ReadForm(FormLogin)
	if err != nil {
		return fmt.Errorf("router.SubmitLogin: %w", err)
	}
	email, password := fields[FieldEmail], fields[FieldPassword]

	user, err := r.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("router.SubmitLogin: %w", err)
	}
	if err != nil || user.Password != password {
		return r.reject(ViewLogin, FieldPassword, MsgBadCredentials)
	}

	if err := r.sessions.Login(ctx, user); err != nil {
		return fmt.Errorf("router.SubmitLogin: %w", err)
	}

	r.log.InfoContext(ctx, "user logged in", "email", email)
	return r.Navigate(ctx, string(KeyDashboard))
}

// Logout clears the session and returns to the login view. There is no
// confirmation step.
func (r *Router) Logout(ctx context.Context) error {
	if err := r.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("router.Logout: %w", err)
	}
	r.log.InfoContext(ctx, "user logged out")
	return r.Navigate(ctx, string(KeyLogin))
}

// SubmitCreateTrip handles the create-trip form. The trip is owned by the
// session user and gets a time-ordered UUID, so ids are unique and sort by
// creation time. Nothing is persisted unless both dates parse and the end
// date is not before the start date.
func (r *Router) SubmitCreateTrip(ctx context.Context) error {
	sess, err := r.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			// The guard makes this unreachable via navigation, but a direct
			// call without a session still lands on login.
			return r.Navigate(ctx, string(KeyLogin))
		}
		return fmt.Errorf("router.SubmitCreateTrip: %w", err)
	}

	fields, err := r.forms.ReadForm(FormCreateTrip)
	if err != nil {
		return fmt.Errorf("router.SubmitCreateTrip: %w", err)
	}

	start, err := time.Parse(domain.DateLayout, fields[FieldStartDate])
	if err != nil {
		return r.reject(ViewCreateTrip, FieldStartDate, MsgBadDate)
	}
	end, err := time.Parse(domain.DateLayout, fields[FieldEndDate])
	if err != nil {
		return r.reject(ViewCreateTrip, FieldEndDate, MsgBadDate)
	}
	if end.Before(start) {
		return r.reject(ViewCreateTrip, FieldEndDate, MsgEndBeforeStart)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("router.SubmitCreateTrip: %w", err)
	}

	trip := domain.Trip{
		ID:          id,
		UserID:      sess.Email,
		Title:       fields[FieldTitle],
		Destination: fields[FieldDestination],
		StartDate:   start,
		EndDate:     end,
	}
	if err := r.trips.Add(ctx, trip); err != nil {
		return fmt.Errorf("router.SubmitCreateTrip: %w", err)
	}

	r.log.InfoContext(ctx, "trip created", "id", id, "owner", sess.Email)
	r.renderer.Notify(MsgTripCreated)
	return r.Navigate(ctx, string(KeyDashboard))
}

// SelectTrip is the dashboard trip-card click: it parks the trip id in the
// volatile store for the itinerary view to pick up, then navigates there.
func (r *Router) SelectTrip(ctx context.Context, id uuid.UUID) error {
	if err := r.handoff.Set(ctx, storage.KeySelectedTripID, []byte(id.String())); err != nil {
		return fmt.Errorf("router.SelectTrip: %w", err)
	}
	return r.Navigate(ctx, string(KeyItinerary))
}

// reject shows a field-local validation message and returns the wrapped
// sentinel. The user already has the feedback; the error exists so callers
// can log it.
func (r *Router) reject(view View, field, message string) error {
	r.renderer.ShowFieldError(view, field, message)
	return fmt.Errorf("%w: %s", domain.ErrValidation, message)
}
