package github

import "context"

// Board is one Projects V2 board with its items.
type Board struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items struct {
		Nodes []BoardItem `json:"nodes"`
	} `json:"items"`
}

// BoardItem is one item on a board. Content is nil for items whose content
// has been deleted or is not visible to the token.
type BoardItem struct {
	Content     *ItemContent `json:"content"`
	FieldValues struct {
		Nodes []FieldValue `json:"nodes"`
	} `json:"fieldValues"`
}

// ItemContent is the tagged content variant of a board item: a repository
// issue or a draft. Kind holds the GraphQL __typename discriminant.
type ItemContent struct {
	Kind       string `json:"__typename"` // Issue or DraftIssue
	Title      string `json:"title"`
	Body       string `json:"body"`
	URL        string `json:"url"`
	State      string `json:"state"`
	Repository *struct {
		Name string `json:"name"`
	} `json:"repository"`
}

// FieldValue is one custom field value on a board item. Date is set for
// date fields, Name for single-select fields.
type FieldValue struct {
	Date  string `json:"date"`
	Name  string `json:"name"`
	Field struct {
		Name string `json:"name"`
	} `json:"field"`
}

const boardsQuery = `
query($owner: String!, $cursor: String) {
  user(login: $owner) {
    projectsV2(first: 20, after: $cursor) {
      pageInfo { hasNextPage endCursor }
      nodes {
        id
        title
        items(first: 100) {
          nodes {
            content {
              __typename
              ... on Issue {
                title
                url
                state
                repository { name }
              }
              ... on DraftIssue {
                title
                body
              }
            }
            fieldValues(first: 20) {
              nodes {
                ... on ProjectV2ItemFieldDateValue {
                  date
                  field { ... on ProjectV2Field { name } }
                }
                ... on ProjectV2ItemFieldSingleSelectValue {
                  name
                  field { ... on ProjectV2SingleSelectField { name } }
                }
              }
            }
          }
        }
      }
    }
  }
}`

// FetchBoards returns all Projects V2 boards of a user, following cursor
// pagination across boards.
func (c *Client) FetchBoards(ctx context.Context, owner string) ([]Board, error) {
	var all []Board
	var cursor interface{}

	for {
		var data struct {
			User struct {
				ProjectsV2 struct {
					PageInfo pageInfo `json:"pageInfo"`
					Nodes    []Board  `json:"nodes"`
				} `json:"projectsV2"`
			} `json:"user"`
		}

		variables := map[string]interface{}{
			"owner":  owner,
			"cursor": cursor,
		}
		if err := c.do(ctx, boardsQuery, variables, &data); err != nil {
			return nil, err
		}

		all = append(all, data.User.ProjectsV2.Nodes...)

		if !data.User.ProjectsV2.PageInfo.HasNextPage {
			return all, nil
		}
		cursor = data.User.ProjectsV2.PageInfo.EndCursor
	}
}
