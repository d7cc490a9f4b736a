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

package router

import (
	"errors"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/service"
	"github.com/go-pathway/pathway/pkg/ctx"
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/http/middleware"
	"github.com/go-pathway/pathway/pkg/validate"
	"github.com/go-pathway/pathway/pkg/version"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// memberLocalsKey carries the verified team membership between the guard
// and the handler.
const memberLocalsKey = "teamMember"

type Router struct {
	Http *httpx.Http
	Ctx  *ctx.Context

	permission *service.PermissionService
	team       *service.TeamService
	member     *service.MemberService
	task       *service.TaskService
	feedback   *service.FeedbackService
	activity   *service.ActivityService
	analytics  *service.AnalyticsService
	job        *service.JobService
}

func NewRouter(
	httpConf *httpx.Http,
	appCtx *ctx.Context,
	permission *service.PermissionService,
	team *service.TeamService,
	member *service.MemberService,
	task *service.TaskService,
	feedback *service.FeedbackService,
	activity *service.ActivityService,
	analytics *service.AnalyticsService,
	job *service.JobService,
) *Router {
	return &Router{
		Http:       httpConf,
		Ctx:        appCtx,
		permission: permission,
		team:       team,
		member:     member,
		task:       task,
		feedback:   feedback,
		activity:   activity,
		analytics:  analytics,
		job:        job,
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(middleware.ExceptionMiddleware)
	app.Use(middleware.CorsMiddleware())
	app.Use(middleware.MetricsMiddleware())

	if rt.Http.AccessLog {
		app.Use(middleware.AccessLogMiddleware(rt.Http))
	}

	if rt.Http.ExposeMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	api := app.Group(rt.Http.ContextPath)
	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.Http.Auth.RedisKeyPrefix, rt.Ctx.Redis)

	rt.teamRouter(api, auth)
	rt.memberRouter(api, auth)
	rt.taskRouter(api, auth)
	rt.feedbackRouter(api, auth)
	rt.activityRouter(api, auth)
	rt.analyticsRouter(api, auth)
	rt.jobRouter(api, auth)

	return app
}

// Request-shape failures detected before any service runs. They flow
// through replyServiceError like the service sentinels do.
var (
	errTeamIdEmpty = errors.New("teamId is required")
	errUserIdEmpty = errors.New("userId is required")
	errBadBody     = errors.New("request body could not be parsed")
)

// validationError carries field-level detail into the error envelope.
type validationError struct {
	fields []validate.FieldError
}

func (e *validationError) Error() string { return "request validation failed" }

// requireMember verifies membership for the :teamId route parameter and
// stashes the membership row for the handler. Capability checks build on it.
// It never writes the response; callers map failures via replyServiceError.
func (rt *Router) requireMember(c *fiber.Ctx) (*model.TeamMember, error) {
	teamId := c.Params("teamId")
	if teamId == "" {
		return nil, errTeamIdEmpty
	}

	member, err := rt.permission.VerifyMembership(teamId, middleware.UserId(c))
	if err != nil {
		return nil, err
	}

	c.Locals(memberLocalsKey, member)
	return member, nil
}

// requireCapability is requireMember plus a static permission-table check.
func (rt *Router) requireCapability(c *fiber.Ctx, capability model.Capability) (*model.TeamMember, error) {
	member, err := rt.requireMember(c)
	if err != nil {
		return nil, err
	}
	if err := rt.permission.VerifyCapability(member, capability); err != nil {
		return nil, err
	}
	return member, nil
}

// replyServiceError maps service sentinels onto the HTTP error taxonomy.
// Anything unrecognized is an internal error.
func (rt *Router) replyServiceError(c *fiber.Ctx, err error) error {
	var vErr *validationError
	if errors.As(err, &vErr) {
		return httpx.WithRepErrDetails(c, httpx.ValidationFailed, vErr.fields, c.Path())
	}

	var code *httpx.Code
	switch {
	case errors.Is(err, errTeamIdEmpty):
		code = httpx.TeamIdIsEmpty
	case errors.Is(err, errUserIdEmpty):
		code = httpx.UserIdIsEmpty
	case errors.Is(err, errBadBody):
		code = httpx.RequestParameterParsingFailed
	case errors.Is(err, service.ErrNotAMember):
		code = httpx.NotATeamMember
	case errors.Is(err, service.ErrTeamInactive):
		code = httpx.TeamInactive
	case errors.Is(err, service.ErrInsufficientPermission):
		code = httpx.InsufficientPermission
	case errors.Is(err, service.ErrNotOwner):
		code = httpx.NotTeamOwner
	case errors.Is(err, service.ErrForbidden):
		code = httpx.Forbidden
	case errors.Is(err, service.ErrTeamNotFound):
		code = httpx.TeamNotFound
	case errors.Is(err, service.ErrMemberNotFound):
		code = httpx.MemberNotFound
	case errors.Is(err, service.ErrTaskNotFound):
		code = httpx.TaskNotFound
	case errors.Is(err, service.ErrFeedbackNotFound):
		code = httpx.FeedbackNotFound
	case errors.Is(err, service.ErrJobNotFound):
		code = httpx.JobNotFound
	case errors.Is(err, service.ErrAlreadyMember), errors.Is(err, service.ErrTeamFull),
		errors.Is(err, service.ErrTeamNameTaken):
		code = httpx.BadRequest
	default:
		code = httpx.InternalError
	}
	return httpx.WithRepErrMsg(c, code, err.Error(), c.Path())
}

// parseBody decodes and validates a JSON request body in one step.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errBadBody
	}
	if fieldErrs := validate.Struct(out); len(fieldErrs) > 0 {
		return &validationError{fields: fieldErrs}
	}
	return nil
}
