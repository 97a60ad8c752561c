// SPDX-License-Identifier: MIT

package hill

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("hill")
