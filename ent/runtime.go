// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/leetcoach/ent/recommendationentry"
	"github.com/abhisek/leetcoach/ent/runevent"
	"github.com/abhisek/leetcoach/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	recommendationentryFields := schema.RecommendationEntry{}.Fields()
	_ = recommendationentryFields
	// recommendationentryDescTimesRecommended is the schema descriptor for times_recommended field.
	recommendationentryDescTimesRecommended := recommendationentryFields[3].Descriptor()
	// recommendationentry.TimesRecommendedValidator is a validator for the "times_recommended" field. It is called by the builders before save.
	recommendationentry.TimesRecommendedValidator = recommendationentryDescTimesRecommended.Validators[0].(func(int) error)
	// recommendationentryDescBoostGranted is the schema descriptor for boost_granted field.
	recommendationentryDescBoostGranted := recommendationentryFields[4].Descriptor()
	// recommendationentry.DefaultBoostGranted holds the default value on creation for the boost_granted field.
	recommendationentry.DefaultBoostGranted = recommendationentryDescBoostGranted.Default.(bool)
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescCandidates is the schema descriptor for candidates field.
	runeventDescCandidates := runeventFields[4].Descriptor()
	// runevent.DefaultCandidates holds the default value on creation for the candidates field.
	runevent.DefaultCandidates = runeventDescCandidates.Default.(int)
}
