package github

import "context"

// Issue is a raw repository issue as returned by the issues query.
type Issue struct {
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	State     string     `json:"state"` // OPEN or CLOSED
	Milestone *Milestone `json:"milestone"`
	Labels    struct {
		Nodes []Label `json:"nodes"`
	} `json:"labels"`
}

// Milestone carries the due date an issue inherits when it has no explicit
// deadline field.
type Milestone struct {
	Title string `json:"title"`
	DueOn string `json:"dueOn"`
}

// Label is an issue label.
type Label struct {
	Name string `json:"name"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

const repoIssuesQuery = `
query($owner: String!, $repo: String!, $cursor: String) {
  repository(owner: $owner, name: $repo) {
    issues(first: 100, states: [OPEN], after: $cursor, orderBy: {field: CREATED_AT, direction: DESC}) {
      pageInfo { hasNextPage endCursor }
      nodes {
        title
        url
        state
        milestone { title dueOn }
        labels(first: 10) { nodes { name } }
      }
    }
  }
}`

// FetchRepoIssues returns all open issues of one repository, following
// cursor pagination until the server reports no further page.
func (c *Client) FetchRepoIssues(ctx context.Context, owner, repo string) ([]Issue, error) {
	var all []Issue
	var cursor interface{}

	for {
		var data struct {
			Repository struct {
				Issues struct {
					PageInfo pageInfo `json:"pageInfo"`
					Nodes    []Issue  `json:"nodes"`
				} `json:"issues"`
			} `json:"repository"`
		}

		variables := map[string]interface{}{
			"owner":  owner,
			"repo":   repo,
			"cursor": cursor,
		}
		if err := c.do(ctx, repoIssuesQuery, variables, &data); err != nil {
			return nil, err
		}

		all = append(all, data.Repository.Issues.Nodes...)

		if !data.Repository.Issues.PageInfo.HasNextPage {
			return all, nil
		}
		cursor = data.Repository.Issues.PageInfo.EndCursor
	}
}
