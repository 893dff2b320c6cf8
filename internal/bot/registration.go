package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"datingbot/internal/models"
	"datingbot/internal/storage"
)

const (
	minAge    = 18
	maxAge    = 75
	maxBioLen = 500
)

const (
	promptAge        = "How old are you? Enter a number between 18 and 75."
	promptAgeInvalid = "Please enter a valid age between 18 and 75."
	promptGender     = "What is your gender?"
	promptLocation   = "Where are you located? (city, country)"
	promptDenom      = "What is your denomination?"
	promptAttendance = "How often do you attend church?"
	promptBio        = "Tell us about yourself (up to 500 characters)."
	promptPhoto      = "Please send a profile photo."
	promptVideo      = "Almost done! Send a short verification video so we can confirm you are real."

	msgRegistered = "🎉 Your profile is complete! Our team will review your verification video shortly."
	msgSaveFailed = "Something went wrong while saving your profile. Please send your verification video again in a moment."
	msgCancelled  = "Registration cancelled. You can start again anytime with /register."
	msgHasProfile = "You already have a profile, no need to register again."
)

// startRegistration creates a fresh draft and prompts for the first field.
// Users who already have a persisted profile are turned away.
func (b *Bot) startRegistration(ctx context.Context, ev Event) {
	if b.db != nil {
		_, err := b.db.GetUserByTelegramID(ctx, ev.UserID)
		if err == nil {
			b.send(ev.ChatID, msgHasProfile)
			return
		}
		if !errors.Is(err, storage.ErrNotFound) {
			b.logger.Warn("Failed to look up user before registration",
				zap.Error(err),
				zap.Int64("user_id", ev.UserID),
			)
		}
	}

	b.sessions.Start(ev.UserID)
	b.logger.Info("Registration started", zap.Int64("user_id", ev.UserID))
	b.send(ev.ChatID, "Let's set up your profile! 🙏\n\n"+promptAge)
}

// advanceRegistration feeds one event into the user's state machine.
// Valid input stores the field and moves to the next state, invalid input
// re-prompts and stays put, and a cancel signal drops the draft entirely.
func (b *Bot) advanceRegistration(ctx context.Context, ev Event, reg *Registration) {
	if ev.IsCancel() {
		b.sessions.Delete(ev.UserID)
		b.logger.Info("Registration cancelled",
			zap.Int64("user_id", ev.UserID),
			zap.String("state", string(reg.State)),
		)
		b.send(ev.ChatID, msgCancelled)
		return
	}

	switch reg.State {
	case StateAge:
		b.stepAge(ev, reg)
	case StateGender:
		b.stepGender(ev, reg)
	case StateLocation:
		b.stepLocation(ev, reg)
	case StateDenomination:
		b.stepDenomination(ev, reg)
	case StateAttendance:
		b.stepAttendance(ev, reg)
	case StateBio:
		b.stepBio(ev, reg)
	case StatePhoto:
		b.stepPhoto(ev, reg)
	case StateVideo:
		b.stepVideo(ctx, ev, reg)
	}
}

func (b *Bot) stepAge(ev Event, reg *Registration) {
	if ev.Kind != EventText {
		b.send(ev.ChatID, promptAgeInvalid)
		return
	}

	age, err := strconv.Atoi(strings.TrimSpace(ev.Text))
	if err != nil || age < minAge || age > maxAge {
		b.send(ev.ChatID, promptAgeInvalid)
		return
	}

	reg.Draft.Age = age
	reg.State = StateGender
	b.sendWithKeyboard(ev.ChatID, promptGender, genderKeyboard())
}

func (b *Bot) stepGender(ev Event, reg *Registration) {
	if ev.Kind != EventCallback || ev.Action != ActionGender || !models.ValidGender(ev.Value) {
		b.sendWithKeyboard(ev.ChatID, promptGender, genderKeyboard())
		return
	}

	reg.Draft.Gender = ev.Value
	reg.State = StateLocation
	b.send(ev.ChatID, promptLocation)
}

func (b *Bot) stepLocation(ev Event, reg *Registration) {
	if ev.Kind != EventText || strings.TrimSpace(ev.Text) == "" {
		b.send(ev.ChatID, promptLocation)
		return
	}

	reg.Draft.Location = ev.Text
	reg.State = StateDenomination
	b.sendWithKeyboard(ev.ChatID, promptDenom, denominationKeyboard())
}

func (b *Bot) stepDenomination(ev Event, reg *Registration) {
	if ev.Kind != EventCallback || ev.Action != ActionDenomination || !models.ValidDenomination(ev.Value) {
		b.sendWithKeyboard(ev.ChatID, promptDenom, denominationKeyboard())
		return
	}

	reg.Draft.Denomination = ev.Value
	reg.State = StateAttendance
	b.sendWithKeyboard(ev.ChatID, promptAttendance, attendanceKeyboard())
}

func (b *Bot) stepAttendance(ev Event, reg *Registration) {
	if ev.Kind != EventCallback || ev.Action != ActionAttendance || !models.ValidAttendance(ev.Value) {
		b.sendWithKeyboard(ev.ChatID, promptAttendance, attendanceKeyboard())
		return
	}

	reg.Draft.Attendance = ev.Value
	reg.State = StateBio
	b.send(ev.ChatID, promptBio)
}

func (b *Bot) stepBio(ev Event, reg *Registration) {
	if ev.Kind != EventText {
		b.send(ev.ChatID, promptBio)
		return
	}

	reg.Draft.Bio = truncateRunes(ev.Text, maxBioLen)
	reg.State = StatePhoto
	b.send(ev.ChatID, promptPhoto)
}

func (b *Bot) stepPhoto(ev Event, reg *Registration) {
	if ev.Kind != EventPhoto {
		b.send(ev.ChatID, promptPhoto)
		return
	}

	reg.Draft.PhotoFileID = ev.PhotoFileID
	reg.State = StateVideo
	b.send(ev.ChatID, promptVideo)
}

// stepVideo is the terminal step: it stores the video reference and
// finalizes the draft into a persisted user plus wallet. The success
// message is only sent after the transaction has committed; on failure the
// draft stays in place so the user can retry by resending the video.
func (b *Bot) stepVideo(ctx context.Context, ev Event, reg *Registration) {
	if ev.Kind != EventVideo {
		b.send(ev.ChatID, promptVideo)
		return
	}

	reg.Draft.VideoFileID = ev.VideoFileID

	if b.db == nil {
		b.logger.Error("Cannot finalize registration: persistence is disabled",
			zap.Int64("user_id", ev.UserID),
		)
		b.send(ev.ChatID, msgSaveFailed)
		return
	}

	now := time.Now().UTC()
	user := models.User{
		TelegramID:       ev.UserID,
		Username:         ev.Username,
		FirstName:        ev.FirstName,
		Age:              reg.Draft.Age,
		Gender:           reg.Draft.Gender,
		Location:         reg.Draft.Location,
		Denomination:     reg.Draft.Denomination,
		ChurchAttendance: reg.Draft.Attendance,
		Bio:              reg.Draft.Bio,
		PhotoFileID:      reg.Draft.PhotoFileID,
		VideoFileID:      reg.Draft.VideoFileID,
		CreatedAt:        now,
		LastActiveAt:     now,
	}

	userID, err := b.db.CreateUserWithWallet(ctx, user)
	if err != nil {
		b.logger.Error("Failed to finalize registration",
			zap.Error(err),
			zap.Int64("user_id", ev.UserID),
		)
		b.send(ev.ChatID, msgSaveFailed)
		return
	}

	b.sessions.Delete(ev.UserID)
	b.logger.Info("Registration finalized",
		zap.Int64("user_id", ev.UserID),
		zap.String("profile_id", userID.String()),
	)
	b.send(ev.ChatID, msgRegistered)
}

// truncateRunes cuts s to at most n characters without splitting a rune
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
