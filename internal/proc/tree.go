// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package proc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/retr0h/envscope/internal/provider/ps"
)

// TreeNode is one process in a parent to child hierarchy.
type TreeNode struct {
	// Process is the snapshot at this node.
	Process Process `json:"process"`
	// Children are the direct child processes.
	Children []*TreeNode `json:"children,omitempty"`
}

// Tree builds the descendant hierarchy rooted at rootPID. Returns
// nil, nil when the root is gone, denied, or a zombie. Vanished
// children are skipped; denied children are kept as leaves so the
// shape of the tree survives partial permissions.
func (i *Inspector) Tree(
	ctx context.Context,
	rootPID int32,
) (*TreeNode, error) {
	if rootPID < 1 || rootPID > i.maxPID {
		return nil, fmt.Errorf("pid %d: %w", rootPID, ErrInvalidPID)
	}

	root, err := i.GetProcess(ctx, rootPID)
	if err != nil || root == nil {
		return nil, err
	}

	visited := map[int32]struct{}{rootPID: {}}
	node := &TreeNode{Process: *root}
	i.attachChildren(ctx, node, visited)

	return node, nil
}

// attachChildren recursively resolves and attaches child processes.
// The visited set guards against pid reuse producing cycles.
func (i *Inspector) attachChildren(
	ctx context.Context,
	node *TreeNode,
	visited map[int32]struct{},
) {
	childPids, err := i.source.ChildPids(ctx, node.Process.PID)
	if err != nil {
		if !isSkippable(err) {
			i.logger.Warn(
				"failed to list children",
				slog.Int("pid", int(node.Process.PID)),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	for _, pid := range childPids {
		if pid < 1 || pid > i.maxPID {
			continue
		}
		if _, seen := visited[pid]; seen {
			continue
		}
		visited[pid] = struct{}{}

		info, err := i.source.Info(ctx, pid)
		if err != nil {
			if errors.Is(err, ps.ErrAccessDenied) {
				p := NewProcess(&ps.Info{PID: pid, Name: ""})
				node.Children = append(node.Children, &TreeNode{Process: p})
			}
			continue
		}

		child := &TreeNode{Process: NewProcess(info)}
		i.attachChildren(ctx, child, visited)
		node.Children = append(node.Children, child)
	}
}

// Count returns the number of processes in the tree including the
// root.
func (n *TreeNode) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}

	return count
}

// Walk visits the tree depth first, calling fn with each node and its
// depth from the root.
func (n *TreeNode) Walk(
	fn func(node *TreeNode, depth int),
) {
	n.walk(fn, 0)
}

func (n *TreeNode) walk(
	fn func(node *TreeNode, depth int),
	depth int,
) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}
