// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package managed

// MBLen returns the length of a buffer.
func (a *Arena) MBLen(h Handle) (int, error) {
	data, found := a.buffers[h]
	if !found {
		return 0, &InvalidHandleError{Kind: KindBuffer, Handle: h}
	}
	return len(data), nil
}

// MBOverwrite replaces the content of an existing buffer.
func (a *Arena) MBOverwrite(h Handle, data []byte) error {
	if _, found := a.buffers[h]; !found {
		return &InvalidHandleError{Kind: KindBuffer, Handle: h}
	}
	a.SetBuffer(h, data)
	return nil
}

// MBAppend appends bytes to a buffer.
func (a *Arena) MBAppend(h Handle, data []byte) error {
	current, found := a.buffers[h]
	if !found {
		return &InvalidHandleError{Kind: KindBuffer, Handle: h}
	}
	res := make([]byte, 0, len(current)+len(data))
	res = append(res, current...)
	res = append(res, data...)
	a.buffers[h] = res
	return nil
}

// MBAppendBuffer appends the content of the data buffer to the accumulator.
// Both handles may be the same.
func (a *Arena) MBAppendBuffer(accumulator, data Handle) error {
	content, err := a.Buffer(data)
	if err != nil {
		return err
	}
	return a.MBAppend(accumulator, content)
}

// MBLoadSlice reads length bytes of a buffer starting at start.
func (a *Arena) MBLoadSlice(h Handle, start, length int) ([]byte, error) {
	data, found := a.buffers[h]
	if !found {
		return nil, &InvalidHandleError{Kind: KindBuffer, Handle: h}
	}
	if start < 0 || length < 0 || start > len(data) || length > len(data)-start {
		return nil, ErrInvalidSlice
	}
	return append([]byte{}, data[start:start+length]...), nil
}

// MBSlice copies a range of the source buffer into the destination buffer,
// replacing its content. The destination may be the source.
func (a *Arena) MBSlice(src Handle, start, length int, dest Handle) error {
	slice, err := a.MBLoadSlice(src, start, length)
	if err != nil {
		return err
	}
	a.SetBuffer(dest, slice)
	return nil
}

// MBSetSlice overwrites bytes of a buffer starting at start. The write must
// lie within the current buffer.
func (a *Arena) MBSetSlice(h Handle, start int, data []byte) error {
	current, found := a.buffers[h]
	if !found {
		return &InvalidHandleError{Kind: KindBuffer, Handle: h}
	}
	if start < 0 || start > len(current) || len(data) > len(current)-start {
		return ErrInvalidSlice
	}
	res := append([]byte{}, current...)
	copy(res[start:], data)
	a.buffers[h] = res
	return nil
}

// MBEqual compares the content of two buffers.
func (a *Arena) MBEqual(x, y Handle) (bool, error) {
	first, err := a.Buffer(x)
	if err != nil {
		return false, err
	}
	second, err := a.Buffer(y)
	if err != nil {
		return false, err
	}
	return string(first) == string(second), nil
}
