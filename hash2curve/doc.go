// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash2curve provides the expand_message_xmd and hash_to_field
// primitives of RFC 9380, shared by the try-and-increment and SSWU
// hash-to-curve strategies of package curve.
package hash2curve
