package types

import shared "pulse-cli/shared"

// Callbacks a per-post controller uses to notify the owning list. Entities
// cross controller boundaries by value snapshots only.
type OnPostDeleted func(postId int64)
type OnPostUpdated func(post *shared.Post)

type OnCommentCreated func(comment *shared.Comment)
type OnCommentDeleted func(commentId int64)
