// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/go-github/v43/github"
)

// commits inspected per resource when looking for the last content change
const commitsPerPage = 20

// lastModified returns the committer date of the latest non-internal
// commit that changed the resource
func lastModified(ctx context.Context, repositories Repositories, r URL) (time.Time, error) {
	opts := &github.CommitsListOptions{
		Path:        r.GetResourcePath(),
		SHA:         r.GetRef(),
		ListOptions: github.ListOptions{PerPage: commitsPerPage},
	}
	commits, resp, err := repositories.ListCommits(ctx, r.GetOwner(), r.GetRepo(), opts)
	if err != nil {
		return time.Time{}, err
	}
	if resp != nil && resp.StatusCode >= 400 {
		return time.Time{}, fmt.Errorf("list commits for %s fails with HTTP status: %d", r.String(), resp.StatusCode)
	}
	commits = slices.DeleteFunc(commits, isInternalCommit)
	if len(commits) == 0 {
		return time.Time{}, ErrResourceNotFound(r.String())
	}
	latest := commits[0].GetCommit().GetCommitter().GetDate()
	for _, c := range commits[1:] {
		if d := c.GetCommit().GetCommitter().GetDate(); d.After(latest) {
			latest = d
		}
	}
	return latest, nil
}

func isInternalCommit(commit *github.RepositoryCommit) bool {
	message := commit.GetCommit().GetMessage()
	email := commit.GetCommit().GetCommitter().GetEmail()
	return strings.HasPrefix(message, "[int]") ||
		strings.Contains(message, "[skip ci]") ||
		strings.HasSuffix(email, "[bot]@users.noreply.github.com")
}
