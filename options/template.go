// Copyright (C) 2025 Specter Ops, Inc.
//
// This file is part of PIMHound.
//
// PIMHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package options

import (
	"regexp"
	"time"
)

var templateToken = regexp.MustCompile(`\$\{(\w+)\}`)

// ExpandTemplate substitutes the supported ${token} placeholders in text.
// Unknown tokens pass through verbatim so that literal braces in a
// justification survive resolution.
func ExpandTemplate(text string, identity Identity, now time.Time) string {
	return templateToken.ReplaceAllStringFunc(text, func(match string) string {
		switch templateToken.FindStringSubmatch(match)[1] {
		case "date":
			return now.Format("2006-01-02")
		case "datetime":
			return now.Format(time.RFC3339)
		case "userId":
			return identity.UserId
		case "userPrincipalName":
			return identity.UserPrincipalName
		default:
			return match
		}
	})
}
