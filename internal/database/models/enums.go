package models

import (
	"sort"
	"strings"
)

// Plan is a tenant subscription tier
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// UserRole is the role of a user inside its tenant
type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleAdmin  UserRole = "admin"
	UserRoleAgent  UserRole = "agent"
	UserRoleLender UserRole = "lender"
)

// EmailType classifies a person email
type EmailType string

const (
	EmailTypeHome  EmailType = "home"
	EmailTypeWork  EmailType = "work"
	EmailTypeOther EmailType = "other"
)

// EmailStatus tracks deliverability of a person email
type EmailStatus string

const (
	EmailStatusValid        EmailStatus = "valid"
	EmailStatusBounced      EmailStatus = "bounced"
	EmailStatusUnsubscribed EmailStatus = "unsubscribed"
)

// PhoneType classifies a person phone
type PhoneType string

const (
	PhoneTypeMobile PhoneType = "mobile"
	PhoneTypeHome   PhoneType = "home"
	PhoneTypeWork   PhoneType = "work"
	PhoneTypeFax    PhoneType = "fax"
	PhoneTypeOther  PhoneType = "other"
)

// PhoneStatus tracks reachability of a person phone
type PhoneStatus string

const (
	PhoneStatusValid     PhoneStatus = "valid"
	PhoneStatusInvalid   PhoneStatus = "invalid"
	PhoneStatusDoNotCall PhoneStatus = "do_not_call"
)

// AddressType classifies a person address
type AddressType string

const (
	AddressTypeHome    AddressType = "home"
	AddressTypeWork    AddressType = "work"
	AddressTypeMailing AddressType = "mailing"
	AddressTypeOther   AddressType = "other"
)

// CollaboratorRole is the access level of a collaborator
type CollaboratorRole string

const (
	CollaboratorRoleViewer CollaboratorRole = "viewer"
	CollaboratorRoleEditor CollaboratorRole = "editor"
)

// FileType is the category derived from an upload's MIME type
type FileType string

const (
	FileTypeImage        FileType = "image"
	FileTypeDocument     FileType = "document"
	FileTypeSpreadsheet  FileType = "spreadsheet"
	FileTypePresentation FileType = "presentation"
	FileTypeAudio        FileType = "audio"
	FileTypeVideo        FileType = "video"
	FileTypeArchive      FileType = "archive"
	FileTypeOther        FileType = "other"
)

// GroupType says who a group distributes leads to
type GroupType string

const (
	GroupTypeAgent  GroupType = "agent"
	GroupTypeLender GroupType = "lender"
)

// DistributionType is how a group hands out leads
type DistributionType string

const (
	DistributionRoundRobin   DistributionType = "round_robin"
	DistributionFirstToClaim DistributionType = "first_to_claim"
)

// MatchType combines lead flow conditions
type MatchType string

const (
	MatchAll MatchType = "all"
	MatchAny MatchType = "any"
)

// AssignType is the target kind of a lead flow rule
type AssignType string

const (
	AssignToUser  AssignType = "user"
	AssignToGroup AssignType = "group"
	AssignToPond  AssignType = "pond"
)

// ConditionField is a person attribute a rule condition can test
type ConditionField string

const (
	FieldSource    ConditionField = "source"
	FieldFirstName ConditionField = "first_name"
	FieldLastName  ConditionField = "last_name"
	FieldEmail     ConditionField = "email"
	FieldPhone     ConditionField = "phone"
	FieldPrice     ConditionField = "price"
	FieldTag       ConditionField = "tag"
	FieldCity      ConditionField = "city"
	FieldState     ConditionField = "state"
)

// ConditionOperator compares a person field with a rule value
type ConditionOperator string

const (
	OpEquals     ConditionOperator = "equals"
	OpNotEquals  ConditionOperator = "not_equals"
	OpContains   ConditionOperator = "contains"
	OpStartsWith ConditionOperator = "starts_with"
	OpIn         ConditionOperator = "in"
	OpGreater    ConditionOperator = "gt"
	OpLess       ConditionOperator = "lt"
)

// IsValid checks if the Plan is valid
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleAgent, UserRoleLender:
		return true
	}
	return false
}

// IsValid checks if the DistributionType is valid
func (d DistributionType) IsValid() bool {
	return d == DistributionRoundRobin || d == DistributionFirstToClaim
}

// IsValid checks if the AssignType is valid
func (a AssignType) IsValid() bool {
	switch a {
	case AssignToUser, AssignToGroup, AssignToPond:
		return true
	}
	return false
}

// IsValid checks if the ConditionField is valid
func (f ConditionField) IsValid() bool {
	switch f {
	case FieldSource, FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
		FieldPrice, FieldTag, FieldCity, FieldState:
		return true
	}
	return false
}

// IsValid checks if the ConditionOperator is valid
func (o ConditionOperator) IsValid() bool {
	switch o {
	case OpEquals, OpNotEquals, OpContains, OpStartsWith, OpIn, OpGreater, OpLess:
		return true
	}
	return false
}

// EnumOption is a selectable value exposed to clients
type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func options(values ...string) []EnumOption {
	opts := make([]EnumOption, len(values))
	for i, v := range values {
		opts[i] = EnumOption{Value: v, Label: humanize(v)}
	}
	return opts
}

func humanize(v string) string {
	words := strings.Fields(strings.ReplaceAll(v, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var enumRegistry = map[string][]EnumOption{
	"plans":                  options(string(PlanFree), string(PlanPro), string(PlanEnterprise)),
	"user-roles":             options(string(UserRoleOwner), string(UserRoleAdmin), string(UserRoleAgent), string(UserRoleLender)),
	"email-types":            options(string(EmailTypeHome), string(EmailTypeWork), string(EmailTypeOther)),
	"email-statuses":         options(string(EmailStatusValid), string(EmailStatusBounced), string(EmailStatusUnsubscribed)),
	"phone-types":            options(string(PhoneTypeMobile), string(PhoneTypeHome), string(PhoneTypeWork), string(PhoneTypeFax), string(PhoneTypeOther)),
	"phone-statuses":         options(string(PhoneStatusValid), string(PhoneStatusInvalid), string(PhoneStatusDoNotCall)),
	"address-types":          options(string(AddressTypeHome), string(AddressTypeWork), string(AddressTypeMailing), string(AddressTypeOther)),
	"collaborator-roles":     options(string(CollaboratorRoleViewer), string(CollaboratorRoleEditor)),
	"file-types":             options(string(FileTypeImage), string(FileTypeDocument), string(FileTypeSpreadsheet), string(FileTypePresentation), string(FileTypeAudio), string(FileTypeVideo), string(FileTypeArchive), string(FileTypeOther)),
	"group-types":            options(string(GroupTypeAgent), string(GroupTypeLender)),
	"distribution-types":     options(string(DistributionRoundRobin), string(DistributionFirstToClaim)),
	"lead-flow-match-types":  options(string(MatchAll), string(MatchAny)),
	"lead-flow-assign-types": options(string(AssignToUser), string(AssignToGroup), string(AssignToPond)),
	"lead-flow-fields":       options(string(FieldSource), string(FieldFirstName), string(FieldLastName), string(FieldEmail),
		string(FieldPhone), string(FieldPrice), string(FieldTag), string(FieldCity), string(FieldState)),
	"lead-flow-operators": options(string(OpEquals), string(OpNotEquals), string(OpContains), string(OpStartsWith),
		string(OpIn), string(OpGreater), string(OpLess)),
}

// EnumNames lists the registered enum names in sorted order
func EnumNames() []string {
	names := make([]string, 0, len(enumRegistry))
	for name := range enumRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnumOptions returns the options of a named enum
func EnumOptions(name string) ([]EnumOption, bool) {
	opts, ok := enumRegistry[name]
	return opts, ok
}
