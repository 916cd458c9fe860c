// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Greet prints a greeting a number of times.
//
//	go run ./example/greet name=World times=3 interval=0.5
//	go run ./example/greet everyone=true loud=true
//	go run ./example/greet --options
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/yeetrun/clopts/pkg/clopts"
)

var (
	name     = clopts.MustOption("name", clopts.String, clopts.WithPattern(`\w+`), clopts.WithDescription("Who to greet"))
	everyone = clopts.MustOption("everyone", clopts.Bool, clopts.WithPattern(clopts.PatternBool), clopts.WithDescription("Greet everybody instead of one name"))
	greeting = clopts.MustOption("greeting", clopts.String, clopts.WithDefault("Hello"))
	times    = clopts.MustOption("times", clopts.Int, clopts.WithPattern(`\d+`), clopts.WithDefault(1))
	interval = clopts.MustOption("interval", clopts.Float, clopts.WithPattern(clopts.PatternFloat), clopts.WithDefault(0.0), clopts.WithDescription("Seconds between greetings"))
	loud     = clopts.MustOption("loud", clopts.Bool, clopts.WithPattern(clopts.PatternBool), clopts.WithDefault(false))
)

func main() {
	reg := clopts.New(name, everyone, greeting, times, interval, loud)
	reg.Summary = false
	if err := reg.AddDependency(name, everyone); err != nil {
		panic(err)
	}
	res := reg.Run()

	who := res.GetString("name")
	if res.GetBool("everyone") || who == "" {
		who = "everyone"
	}
	msg := fmt.Sprintf("%s, %s!", res.GetString("greeting"), who)
	if res.GetBool("loud") {
		msg = strings.ToUpper(msg)
	}
	wait := time.Duration(res.GetFloat("interval") * float64(time.Second))
	for i := range res.GetInt("times") {
		if i > 0 {
			time.Sleep(wait)
		}
		fmt.Println(msg)
	}
}
