package catalog

import "github.com/myrjola/lightfingers/internal/models"

// SizeClass tags a mechanism with the elimination group size it reads most
// naturally at. The elimination planner prefers mechanisms whose class
// matches the group size and falls back to any legal mechanism.
type SizeClass string

const (
	SizeSingle SizeClass = "single"
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// SizeClassFor maps a group size to its class.
func SizeClassFor(size int) SizeClass {
	switch {
	case size <= 1:
		return SizeSingle
	case size == 2:
		return SizeSmall
	case size == 3:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Speakers who can deliver clues.
const (
	SpeakerWitness  = "witness"
	SpeakerDetective = "detective"
	SpeakerForensic = "forensic_examiner"
	SpeakerInformant = "informant"
)

// Delivery types.
const (
	DeliveryInterview      = "interview"
	DeliveryCaseNote       = "case_note"
	DeliveryForensicReport = "forensic_report"
	DeliveryTip            = "tip"
)

// Speakers lists every speaker for uniform fallback picks.
var Speakers = []string{SpeakerWitness, SpeakerDetective, SpeakerForensic, SpeakerInformant}

// DeliveryTypes lists every delivery type for uniform fallback picks.
var DeliveryTypes = []string{DeliveryInterview, DeliveryCaseNote, DeliveryForensicReport, DeliveryTip}

// DeliveryTypeFor returns the delivery type a speaker naturally uses.
func DeliveryTypeFor(speaker string) string {
	switch speaker {
	case SpeakerWitness:
		return DeliveryInterview
	case SpeakerDetective:
		return DeliveryCaseNote
	case SpeakerForensic:
		return DeliveryForensicReport
	case SpeakerInformant:
		return DeliveryTip
	}
	return DeliveryCaseNote
}

// Mechanism is one way a clue can rule elements out.
type Mechanism struct {
	ID               string          `json:"id"`
	Category         models.Category `json:"category"`
	SizeClass        SizeClass       `json:"sizeClass"`
	PreferredSpeaker string          `json:"preferredSpeaker"`
}

// Mechanism ids referenced by the planners when building clue context.
const (
	MechanismSeenElsewhere    = "seen_elsewhere"
	MechanismAlibiWitnessed   = "alibi_witnessed"
	MechanismAlibiDocumented  = "alibi_documented"
	MechanismPhysicalMismatch = "physical_mismatch"

	MechanismItemRecovered   = "item_recovered"
	MechanismWrongProfile    = "wrong_profile"
	MechanismItemSecured     = "item_secured"
	MechanismCategorySecured = "category_secured"

	MechanismAlarmUntouched = "alarm_untouched"
	MechanismGuardedArea    = "guarded_area"
	MechanismLockedArea     = "locked_area"
	MechanismNoAccessRoute  = "no_access_route"

	MechanismAlarmLog       = "alarm_log"
	MechanismWitnessPresent = "witness_present"
	MechanismVenueCrowded   = "venue_crowded"
	MechanismSecuritySweep  = "security_sweep"
)

func mechanismsByCategory() map[models.Category][]Mechanism {
	return map[models.Category][]Mechanism{
		models.CategorySuspect: {
			{ID: MechanismSeenElsewhere, Category: models.CategorySuspect, SizeClass: SizeSingle, PreferredSpeaker: SpeakerWitness},
			{ID: MechanismAlibiWitnessed, Category: models.CategorySuspect, SizeClass: SizeSmall, PreferredSpeaker: SpeakerWitness},
			{ID: MechanismAlibiDocumented, Category: models.CategorySuspect, SizeClass: SizeMedium, PreferredSpeaker: SpeakerDetective},
			{ID: MechanismPhysicalMismatch, Category: models.CategorySuspect, SizeClass: SizeLarge, PreferredSpeaker: SpeakerForensic},
		},
		models.CategoryItem: {
			{ID: MechanismItemRecovered, Category: models.CategoryItem, SizeClass: SizeSingle, PreferredSpeaker: SpeakerForensic},
			{ID: MechanismWrongProfile, Category: models.CategoryItem, SizeClass: SizeSmall, PreferredSpeaker: SpeakerForensic},
			{ID: MechanismItemSecured, Category: models.CategoryItem, SizeClass: SizeMedium, PreferredSpeaker: SpeakerDetective},
			{ID: MechanismCategorySecured, Category: models.CategoryItem, SizeClass: SizeLarge, PreferredSpeaker: SpeakerDetective},
		},
		models.CategoryLocation: {
			{ID: MechanismAlarmUntouched, Category: models.CategoryLocation, SizeClass: SizeSingle, PreferredSpeaker: SpeakerForensic},
			{ID: MechanismGuardedArea, Category: models.CategoryLocation, SizeClass: SizeSmall, PreferredSpeaker: SpeakerWitness},
			{ID: MechanismLockedArea, Category: models.CategoryLocation, SizeClass: SizeMedium, PreferredSpeaker: SpeakerDetective},
			{ID: MechanismNoAccessRoute, Category: models.CategoryLocation, SizeClass: SizeLarge, PreferredSpeaker: SpeakerDetective},
		},
		models.CategoryTime: {
			{ID: MechanismAlarmLog, Category: models.CategoryTime, SizeClass: SizeSingle, PreferredSpeaker: SpeakerForensic},
			{ID: MechanismWitnessPresent, Category: models.CategoryTime, SizeClass: SizeSmall, PreferredSpeaker: SpeakerWitness},
			{ID: MechanismVenueCrowded, Category: models.CategoryTime, SizeClass: SizeMedium, PreferredSpeaker: SpeakerInformant},
			{ID: MechanismSecuritySweep, Category: models.CategoryTime, SizeClass: SizeLarge, PreferredSpeaker: SpeakerDetective},
		},
	}
}
