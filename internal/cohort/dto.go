// AngelaMos | 2026
// dto.go

package cohort

type CohortResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type CohortEnvelope struct {
	Cohort CohortResponse `json:"cohort"`
}

type Member struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type MembersPartition struct {
	Students []Member `json:"students"`
	Teachers []Member `json:"teachers"`
}

// MembersResponse carries the cohort header with its display-formatted
// type alongside the role-partitioned member lists.
type MembersResponse struct {
	Cohort  CohortResponse   `json:"cohort"`
	Members MembersPartition `json:"members"`
}
