package service

// ErrorKind classifies an Error so the transport layer can pick a status
// code without inspecting individual errors.
type ErrorKind int

// nolint:golint
const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindConflict
	KindForbidden
)

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// nolint:golint
var (
	ErrInvalidID      = &Error{Kind: KindForbidden, Code: "INVALID_ID", Message: "invalid id"}
	ErrMissingContent = &Error{Kind: KindValidation, Code: "MISSING_CONTENT", Message: "missing content"}
	ErrMissingImage   = &Error{Kind: KindValidation, Code: "MISSING_IMAGE", Message: "missing image"}

	ErrUserNotFound    = &Error{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "user not found"}
	ErrPostNotFound    = &Error{Kind: KindNotFound, Code: "POST_NOT_FOUND", Message: "post not found"}
	ErrCommentNotFound = &Error{Kind: KindNotFound, Code: "COMMENT_NOT_FOUND", Message: "comment not found"}
	ErrReplyNotFound   = &Error{Kind: KindNotFound, Code: "REPLY_NOT_FOUND", Message: "reply not found"}
	ErrImageNotFound   = &Error{Kind: KindNotFound, Code: "IMAGE_NOT_FOUND", Message: "image not found"}

	ErrEmailInUse           = &Error{Kind: KindConflict, Code: "EMAIL_IS_ALREADY_IN_USE", Message: "email is already in use"}
	ErrUsernameInUse        = &Error{Kind: KindConflict, Code: "USERNAME_IS_ALREADY_IN_USE", Message: "username is already in use"}
	ErrImageExists          = &Error{Kind: KindConflict, Code: "IMAGE_ALREADY_EXIST", Message: "image already exist"}
	ErrIncorrectCredentials = &Error{Kind: KindForbidden, Code: "INCORRECT_CREDENTIALS", Message: "incorrect credentials"}

	ErrAlreadyLikedPost = &Error{Kind: KindConflict, Code: "USER_ALREADY_LIKED_THIS_POST", Message: "user already liked this post"}
	ErrHaveNotLikedPost = &Error{Kind: KindNotFound, Code: "USER_HAVE_NOT_LIKED_THIS_POST", Message: "user have not liked this post"}

	ErrAlreadyLikedComment     = &Error{Kind: KindConflict, Code: "USER_ALREADY_LIKED_THIS_COMMENT", Message: "user already liked this comment"}
	ErrAlreadyDislikedComment  = &Error{Kind: KindConflict, Code: "USER_ALREADY_DISLIKED_THIS_COMMENT", Message: "user already disliked this comment"}
	ErrHaveNotLikedComment     = &Error{Kind: KindNotFound, Code: "USER_HAVE_NOT_LIKED_THIS_COMMENT", Message: "user have not liked this comment"}
	ErrHaveNotDislikedComment  = &Error{Kind: KindNotFound, Code: "USER_HAVE_NOT_DISLIKED_THIS_COMMENT", Message: "user have not disliked this comment"}

	ErrAlreadyLikedReply    = &Error{Kind: KindConflict, Code: "USER_ALREADY_LIKED_THIS_REPLY", Message: "user already liked this reply"}
	ErrAlreadyDislikedReply = &Error{Kind: KindConflict, Code: "USER_ALREADY_DISLIKED_THIS_REPLY", Message: "user already disliked this reply"}
	ErrHaveNotLikedReply    = &Error{Kind: KindNotFound, Code: "USER_HAVE_NOT_LIKED_THIS_REPLY", Message: "user have not liked this reply"}
	ErrHaveNotDislikedReply = &Error{Kind: KindNotFound, Code: "USER_HAVE_NOT_DISLIKED_THIS_REPLY", Message: "user have not disliked this reply"}

	ErrCannotEditPost      = &Error{Kind: KindForbidden, Code: "UNABLE_TO_EDIT_THIS_POST", Message: "unable to edit this post"}
	ErrCannotDeletePost    = &Error{Kind: KindForbidden, Code: "UNABLE_TO_DELETE_THIS_POST", Message: "unable to delete this post"}
	ErrCannotEditComment   = &Error{Kind: KindForbidden, Code: "UNABLE_TO_EDIT_THIS_COMMENT", Message: "unable to edit this comment"}
	ErrCannotDeleteComment = &Error{Kind: KindForbidden, Code: "UNABLE_TO_DELETE_THIS_COMMENT", Message: "unable to delete this comment"}
	ErrCannotDeleteReply   = &Error{Kind: KindForbidden, Code: "UNABLE_TO_DELETE_THIS_REPLY", Message: "unable to delete this reply"}
	ErrCannotDeleteImage   = &Error{Kind: KindForbidden, Code: "UNABLE_TO_DELETE_THIS_IMAGE", Message: "unable to delete this image"}
)
