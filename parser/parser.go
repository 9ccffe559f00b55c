// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/logger"

	"github.com/bjornharrtell/argot/argument"
	"github.com/bjornharrtell/argot/fault"
	"github.com/bjornharrtell/argot/registry"
)

// Parser - consumes token sequences against one registry
type Parser struct {
	reg *registry.Registry
}

// New - create a parser bound to a registry
func New(reg *registry.Registry) *Parser {
	return &Parser{reg: reg}
}

// Parse - consume the whole token stream
//
// On success every matched value container is updated in token order;
// on failure the returned fault.UsageError describes the problem and
// containers may be left partially updated.
func (p *Parser) Parse(tokens []string) error {

	// pending work queue; cluster expansion pushes a synthetic token
	// onto the front instead of recursing
	pending := make([]string, len(tokens))
	copy(pending, tokens)

	var err error

loop:
	for len(pending) > 0 {
		token := pending[0]

		// a token without a dash starts the positional phase
		if !strings.HasPrefix(token, "-") {
			break loop
		}
		pending = pending[1:]

		// end of options, remainder is positional
		if "--" == token {
			break loop
		}

		if strings.HasPrefix(token, "--") {
			pending, err = p.longOption(token, pending)
		} else {
			pending, err = p.shortOption(token, pending)
		}
		if nil != err {
			return err
		}
	}

	return p.parameters(pending)
}

// handle one "--name" token; a value-bearing option takes the next token
func (p *Parser) longOption(token string, pending []string) ([]string, error) {
	name := token[2:]

	opt, ok := p.reg.FindLong(name)
	if !ok {
		return nil, p.fail("Unknown option: " + token)
	}

	if opt.HasValue() {
		if 0 == len(pending) {
			return nil, p.fail("Option " + token + " requires a value")
		}
		raw := pending[0]
		return pending[1:], p.setText(opt, raw)
	}

	return pending, p.toggle(opt, name)
}

// handle one "-x" or "-xREST" token
//
// For a value-bearing x the REST is the inline value; for a flag the
// REST is re-injected as a fresh "-REST" token so clusters like -cvf
// expand one flag at a time.
func (p *Parser) shortOption(token string, pending []string) ([]string, error) {
	rest := token[1:]
	if "" == rest {
		return nil, p.fail("Missing option name in '-'")
	}

	c, size := utf8.DecodeRuneInString(rest)
	name := string(c)
	remainder := rest[size:]

	opt, ok := p.reg.FindShort(name)
	if !ok {
		return nil, p.fail("Unknown option: " + token)
	}

	if "" == remainder {
		if opt.HasValue() {
			if 0 == len(pending) {
				return nil, p.fail("Option " + token + " requires a value")
			}
			raw := pending[0]
			return pending[1:], p.setText(opt, raw)
		}
		return pending, p.toggle(opt, name)
	}

	if opt.HasValue() {
		return pending, p.setText(opt, remainder)
	}

	if err := p.toggle(opt, name); nil != err {
		return nil, err
	}
	return append([]string{"-" + remainder}, pending...), nil
}

// match remaining tokens against the declared parameters left to right
func (p *Parser) parameters(pending []string) error {
	missing := []string{}

	for _, param := range p.reg.Parameters() {
		if param.IsMulti() {
			if 0 == len(pending) {
				if !param.Optional() {
					missing = append(missing, param.DisplayName())
				}
				continue
			}
			for _, raw := range pending {
				if err := p.setText(param, raw); nil != err {
					return err
				}
			}
			pending = nil
			continue
		}

		if 0 == len(pending) {
			// keep scanning so the missing list is complete
			if !param.Optional() {
				missing = append(missing, param.DisplayName())
			}
			continue
		}
		raw := pending[0]
		pending = pending[1:]
		if err := p.setText(param, raw); nil != err {
			return err
		}
	}

	if len(pending) > 0 {
		return p.fail("Too many parameters.")
	}
	if len(missing) > 0 {
		return p.fail("Missing parameter(s): " + strings.Join(missing, ", "))
	}
	return nil
}

// run the converter and fold any rejection into a usage failure
func (p *Parser) setText(arg argument.Argument, raw string) error {
	setter, ok := arg.(argument.TextSetter)
	if !ok {
		logger.Panicf("parser: %s cannot accept a value", arg.DisplayName())
	}
	if err := setter.SetText(raw); nil != err {
		return p.fail(err.Error())
	}
	return nil
}

// resolve a flag toggle
func (p *Parser) toggle(opt argument.Option, name string) error {
	toggler, ok := opt.(argument.Toggler)
	if !ok {
		logger.Panicf("parser: %s is not a flag", opt.DisplayName())
	}
	if err := toggler.Toggle(name); nil != err {
		return p.fail(err.Error())
	}
	return nil
}

// the single externally visible failure: diagnostic + full usage text
func (p *Parser) fail(message string) error {
	return fault.UsageError(message + "\n\n" + p.reg.Usage())
}
