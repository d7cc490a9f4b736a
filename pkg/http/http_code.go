// Copyright 2025 Pathway Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

import "github.com/gofiber/fiber/v2"

var (
	// BadRequest 400
	BadRequest                    = failed(fiber.StatusBadRequest, 4000, "Bad request")
	RequestParameterParsingFailed = failed(fiber.StatusBadRequest, 4001, "Request parameter parsing failed")
	ValidationFailed              = failed(fiber.StatusBadRequest, 4002, "Request validation failed")
	TeamIdIsEmpty                 = failed(fiber.StatusBadRequest, 4003, "Team id is empty")
	UserIdIsEmpty                 = failed(fiber.StatusBadRequest, 4004, "User id is empty")

	// Unauthorized 401
	Unauthorized         = failed(fiber.StatusUnauthorized, 4401, "Unauthorized")
	AuthenticationFailed = failed(fiber.StatusUnauthorized, 4402, "Authentication failed")
	AuthorizationEmpty   = failed(fiber.StatusUnauthorized, 4404, "Authorization is empty")
	InvalidToken         = failed(fiber.StatusUnauthorized, 4405, "Invalid token")
	TokenExpired         = failed(fiber.StatusUnauthorized, 4407, "Token is expired")

	// Forbidden 403
	Forbidden              = failed(fiber.StatusForbidden, 4030, "Forbidden")
	NotATeamMember         = failed(fiber.StatusForbidden, 4031, "Not an active member of this team")
	TeamInactive           = failed(fiber.StatusForbidden, 4032, "Team is inactive")
	InsufficientPermission = failed(fiber.StatusForbidden, 4033, "Insufficient permission")
	NotTeamOwner           = failed(fiber.StatusForbidden, 4034, "Only the team owner may perform this action")

	// NotFound 404
	NotFound         = failed(fiber.StatusNotFound, 4040, "Not found")
	TeamNotFound     = failed(fiber.StatusNotFound, 4041, "Team not found")
	MemberNotFound   = failed(fiber.StatusNotFound, 4042, "Team member not found")
	TaskNotFound     = failed(fiber.StatusNotFound, 4043, "Task not found")
	FeedbackNotFound = failed(fiber.StatusNotFound, 4044, "Feedback not found")
	JobNotFound      = failed(fiber.StatusNotFound, 4045, "Job opportunity not found")

	// InternalError 500
	InternalError = failed(fiber.StatusInternalServerError, 5000, "Internal error, please contact the administrator")
)

var (
	Success = succeed(fiber.StatusOK, 200, "Request Success")
	Created = succeed(fiber.StatusCreated, 201, "Created")
)

type Code struct {
	Status int
	Code   int
	Msg    string
}

func failed(status, code int, msg string) *Code {
	return &Code{Status: status, Code: code, Msg: msg}
}

func succeed(status, code int, msg string) *Code {
	return &Code{Status: status, Code: code, Msg: msg}
}
