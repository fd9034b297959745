/*
Copyright (c) 2017 Jerry Jacobs <jerry.jacobs@xor-gate.org>
Copyright (c) 2013 Blake Smith <blakesmith0@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package artest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGlobalHeaderWrite(t *testing.T) {
	assert.Equal(t, []byte("!<arch>\n"), New().Bytes())
}

func TestSimpleFile(t *testing.T) {
	body := "Hello world!\n"
	b := New().Add(Entry{
		Name:    "hello.txt",
		ModTime: time.Unix(1361157466, 0),
		Uid:     501,
		Gid:     20,
		Mode:    0100644,
		Body:    []byte(body),
	})

	expected := "!<arch>\n" +
		"hello.txt       " + "1361157466  " + "501   " + "20    " + "100644  " + "13        " + "`\n" +
		body + "\n"
	assert.Equal(t, []byte(expected), b.Bytes())
	assert.Equal(t, int64(len(expected)), b.Len())
}

func TestZeroModTime(t *testing.T) {
	hdr := New().Add(Entry{Name: "a"}).Bytes()[8:]
	assert.Equal(t, "0           ", string(hdr[16:28]))
}

func TestWriteBSDFilename(t *testing.T) {
	body := "test a file with a long filename\n"
	b := New().Add(Entry{
		Name:    "test_long_filename.txt",
		ModTime: time.Unix(1542225207, 0),
		Uid:     502,
		Gid:     0,
		Mode:    0644,
		Body:    []byte(body),
	})

	expected := "!<arch>\n" +
		"#1/24           " + "1542225207  " + "502   " + "0     " + "644     " + "57        " + "`\n" +
		"test_long_filename.txt\x00\x00" + body + "\n"
	assert.Equal(t, []byte(expected), b.Bytes())
}

func TestBSDNamePadding(t *testing.T) {
	for _, tc := range []struct {
		Name     string
		Expected string
	}{
		{"a", "#1/4"},
		{"ab", "#1/4"},
		{"abc", "#1/6"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			hdr := New().AddBSD(Entry{Name: tc.Name}).Bytes()[8:]
			assert.Equal(t, tc.Expected, string(hdr[:len(tc.Expected)]))
		})
	}
}

func TestHeaderFields(t *testing.T) {
	hdr := Header(Fields{Name: "a-name-that-is-far-too-long", Size: "12", Trailer: "xx"})
	assert.Len(t, hdr, 60)
	assert.Equal(t, "a-name-that-is-f", string(hdr[:16]))
	assert.Equal(t, "12        ", string(hdr[48:58]))
	assert.Equal(t, "xx", string(hdr[58:]))

	assert.Equal(t, "`\n", string(Header(Fields{})[58:]))
}

func TestBytesIsCopy(t *testing.T) {
	b := New()
	data := b.Bytes()
	data[0] = '?'
	assert.Equal(t, []byte("!<arch>\n"), b.Bytes())
}
