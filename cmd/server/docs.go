// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package main

// General API information for swag. Regenerate docs/ after changing any
// handler annotation:
//
//	swag init -g cmd/server/docs.go -d ./,./internal/api,./internal/models -o docs
//
// @title Wellbore API
// @version 1.0
// @description Oilfield production, downtime and workover records over PostgreSQL.
// @description
// @description ## Rate Limiting
// @description Resource routes allow 100 requests per minute per IP address by default.
// @description /health, /metrics and /swagger are not limited.
// @description
// @description ## Error Responses
// @description Errors are `{"error": "..."}` with an optional `details` member.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/wellbore/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:7071
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks
//
// @tag.name Production
// @tag.description Daily production readings and the wells they imply
//
// @tag.name Rigs
// @tag.description Contracted rigs
//
// @tag.name Wells Down
// @tag.description Downtime records and deferred production
//
// @tag.name Workovers
// @tag.description Workover jobs
//
// @tag.name Workover Updates
// @tag.description Daily workover cost entries and running totals

import _ "github.com/tomtom215/wellbore/docs" // registers the swagger document
