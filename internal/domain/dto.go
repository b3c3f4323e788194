package domain

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

type ContractStatusType string

const (
	ContractStatusNew        ContractStatusType = "new"
	ContractStatusInProgress ContractStatusType = "in_progress"
	ContractStatusTerminated ContractStatusType = "terminated"
)
