package repoargs

type RepositoryName string

const (
	ProfileRepoName  RepositoryName = "profile"
	ContractRepoName RepositoryName = "contract"
	JobRepoName      RepositoryName = "job"
	ReportRepoName   RepositoryName = "report"
)
